package decisionlog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"shellwatch/internal/config"
	"shellwatch/internal/models"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSink struct {
	mock.Mock
}

func (m *MockSink) Write(ctx context.Context, rec Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockSink) Name() string { return "mock" }

func (m *MockSink) Close() error { return nil }

func TestRecorder_SwallowsSinkFailure(t *testing.T) {
	sink := new(MockSink)
	sink.On("Write", mock.Anything, mock.MatchedBy(func(r Record) bool {
		return r.Type == models.DecisionAlertSuppression && !r.Timestamp.IsZero()
	})).Return(errors.New("firestore unavailable"))

	rec := NewRecorder(sink, 10)
	assert.NotPanics(t, func() {
		rec.Log(context.Background(), Record{Collection: models.CollectionDecisionLogs, Type: models.DecisionAlertSuppression, SubjectID: "alt_1"})
	})

	recent := rec.Recent(5)
	require.Len(t, recent, 1)
	assert.Equal(t, "alt_1", recent[0].SubjectID)
	sink.AssertExpectations(t)
}

func TestRecorder_TrailIsBoundedNewestFirst(t *testing.T) {
	sink := new(MockSink)
	sink.On("Write", mock.Anything, mock.Anything).Return(nil)

	rec := NewRecorder(sink, 3)
	for i := 0; i < 5; i++ {
		rec.Log(context.Background(), Record{Type: "T", SubjectID: fmt.Sprintf("s_%d", i)})
	}

	recent := rec.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "s_4", recent[0].SubjectID)
	assert.Equal(t, "s_2", recent[2].SubjectID)
	assert.Len(t, rec.Recent(2), 2)
}

func TestRecorder_KeepsCallerTimestamp(t *testing.T) {
	sink := new(MockSink)
	sink.On("Write", mock.Anything, mock.Anything).Return(nil)
	stamp := time.Date(2025, 10, 27, 10, 0, 0, 0, time.UTC)

	rec := NewRecorder(sink, 0)
	rec.Log(context.Background(), Record{Type: "T", Timestamp: stamp})

	assert.Equal(t, stamp, rec.Recent(1)[0].Timestamp)
}

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestKafkaSink_Write(t *testing.T) {
	writer := new(MockWriter)
	writer.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
		return len(msgs) == 1 && string(msgs[0].Key) == "c_101" && len(msgs[0].Headers) == 2
	})).Return(nil)

	sink := NewKafkaSink(writer)
	err := sink.Write(context.Background(), Record{Collection: models.CollectionDecisionLogs, Type: models.DecisionSARDraft, SubjectID: "c_101"})

	assert.NoError(t, err)
	writer.AssertExpectations(t)
}

func TestKafkaSink_WriteError(t *testing.T) {
	writer := new(MockWriter)
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	err := NewKafkaSink(writer).Write(context.Background(), Record{Type: "T"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

type MockDecisionLogRepository struct {
	mock.Mock
}

func (m *MockDecisionLogRepository) Create(ctx context.Context, entry *models.DecisionLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDecisionLogRepository) FindRecent(ctx context.Context, limit int) ([]models.DecisionLog, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.DecisionLog), args.Error(1)
}

func (m *MockDecisionLogRepository) FindBySubject(ctx context.Context, subjectID string) ([]models.DecisionLog, error) {
	args := m.Called(ctx, subjectID)
	return args.Get(0).([]models.DecisionLog), args.Error(1)
}

func TestPostgresSink_Write(t *testing.T) {
	repo := new(MockDecisionLogRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.DecisionLog) bool {
		return e.Type == models.DecisionFIUEscalation && e.Details["jurisdiction"] == "CY" && len(e.Tags) == 1
	})).Return(nil)

	sink := NewPostgresSink(repo)
	err := sink.Write(context.Background(), Record{
		Collection: models.CollectionDecisionLogs,
		Type:       models.DecisionFIUEscalation,
		SubjectID:  "c_120",
		Details:    map[string]string{"jurisdiction": "CY"},
		Tags:       []string{"fiu"},
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestOpen(t *testing.T) {
	sink, db, err := Open(config.Config{DecisionLogBackend: config.DecisionLogStub})
	require.NoError(t, err)
	assert.Nil(t, db)
	assert.Equal(t, "stub", sink.Name())

	sink, _, err = Open(config.Config{DecisionLogBackend: config.DecisionLogKafka, Kafka: config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "t"}})
	require.NoError(t, err)
	assert.Equal(t, "kafka", sink.Name())

	_, _, err = Open(config.Config{DecisionLogBackend: "firestore"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNewKafkaWriter_ShortBatchTimeout(t *testing.T) {
	w := NewKafkaWriter([]string{"localhost:9092"}, "decision-logs")
	defer w.Close()

	assert.Equal(t, "decision-logs", w.Topic)
	assert.Equal(t, 1, w.BatchSize)
	assert.Equal(t, kafkaBatchTimeout, w.BatchTimeout)
	assert.Less(t, w.BatchTimeout, time.Second)
}

func TestRecorder_UnreachableBrokerDoesNotBlock(t *testing.T) {
	rec := NewRecorder(NewKafkaSink(NewKafkaWriter([]string{"127.0.0.1:1"}, "decision-logs")), 10)
	defer rec.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	assert.NotPanics(t, func() {
		rec.Log(ctx, Record{Collection: models.CollectionDecisionLogs, Type: models.DecisionSARDraft, SubjectID: "c_101"})
	})
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Len(t, rec.Recent(0), 1)
}
