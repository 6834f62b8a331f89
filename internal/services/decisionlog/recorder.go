package decisionlog

import (
	"context"
	"log"
	"sync"
	"time"
)

const defaultTrailSize = 200

// Recorder fronts a Sink. It stamps records, keeps a bounded in-process
// audit trail and swallows sink failures.
type Recorder struct {
	sink Sink
	now  func() time.Time

	mu    sync.RWMutex
	trail []Record
	size  int
}

func NewRecorder(sink Sink, trailSize int) *Recorder {
	if sink == nil {
		sink = NewStubSink()
	}
	if trailSize <= 0 {
		trailSize = defaultTrailSize
	}
	return &Recorder{sink: sink, now: time.Now, size: trailSize}
}

// Log stamps rec and hands it to the sink. It never fails.
func (r *Recorder) Log(ctx context.Context, rec Record) {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = r.now().UTC()
	}
	r.remember(rec)

	if err := r.sink.Write(ctx, rec); err != nil {
		log.Printf("⚠️ decision log (%s) write failed for %s/%s: %v", r.sink.Name(), rec.Collection, rec.Type, err)
	}
}

// Recent returns up to limit records, newest first.
func (r *Recorder) Recent(limit int) []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.trail) {
		limit = len(r.trail)
	}
	out := make([]Record, 0, limit)
	for i := len(r.trail) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.trail[i])
	}
	return out
}

func (r *Recorder) Backend() string {
	return r.sink.Name()
}

func (r *Recorder) Close() error {
	return r.sink.Close()
}

func (r *Recorder) remember(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.trail = append(r.trail, rec)
	if len(r.trail) > r.size {
		r.trail = r.trail[len(r.trail)-r.size:]
	}
}
