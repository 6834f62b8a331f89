package ai

import (
	"context"
	"encoding/hex"
	"log"
	"time"

	"shellwatch/internal/repositories/cache"

	"golang.org/x/crypto/blake2b"
)

// Replies are stored under ai:reply:<hash>.
const (
	cacheEntity  = "ai"
	cacheKeyType = "reply"
)

// PromptCache is the subset of cache.CacheService used for replies.
type PromptCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CachedGenerator serves repeated prompts from the cache. Cache errors are
// logged and the call goes through to the backend.
type CachedGenerator struct {
	next  TextGenerator
	cache PromptCache
	ttl   time.Duration
}

func NewCachedGenerator(next TextGenerator, pc PromptCache, ttl time.Duration) *CachedGenerator {
	return &CachedGenerator{next: next, cache: pc, ttl: ttl}
}

func (g *CachedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	key := promptKey(g.next.Name(), prompt)

	var reply string
	hit, err := g.cache.Get(ctx, key, &reply)
	if err != nil {
		log.Printf("⚠️ ai cache read failed: %v", err)
	}
	if hit {
		return reply, nil
	}

	reply, err = g.next.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if err := g.cache.SetWithTTL(ctx, key, reply, g.ttl); err != nil {
		log.Printf("⚠️ ai cache write failed: %v", err)
	}
	return reply, nil
}

func (g *CachedGenerator) Name() string {
	return g.next.Name() + "+cache"
}

// promptKey hashes the backend name and prompt into a fixed-size key.
func promptKey(backend, prompt string) string {
	sum := blake2b.Sum256([]byte(backend + "\x00" + prompt))
	return cache.GenerateKey(cacheEntity, cacheKeyType, hex.EncodeToString(sum[:]))
}
