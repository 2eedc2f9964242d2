package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/koraytemur/hirdavat/internal/cart"
	"github.com/koraytemur/hirdavat/internal/repository"
)

// Sessions tracks one cart engine per device. Engines are created lazily and
// restored from the key-value store exactly once; afterwards the in-memory
// engine is the authoritative state for that device.
type Sessions struct {
	kv     repository.KV
	logger *slog.Logger

	mu      sync.Mutex
	engines map[string]*cart.Engine
}

// NewSessions creates an empty session registry.
func NewSessions(kv repository.KV, logger *slog.Logger) *Sessions {
	return &Sessions{
		kv:      kv,
		logger:  logger,
		engines: make(map[string]*cart.Engine),
	}
}

// Get returns the cart engine for the given device, creating and restoring
// it on first use.
func (s *Sessions) Get(ctx context.Context, deviceID string) *cart.Engine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if eng, ok := s.engines[deviceID]; ok {
		return eng
	}

	eng := cart.NewEngine(s.kv, deviceID, s.logger)
	eng.Restore(ctx)
	s.engines[deviceID] = eng

	s.logger.DebugContext(ctx, "cart session opened",
		slog.String("device_id", deviceID),
		slog.Int("restored_lines", len(eng.Lines())),
	)

	return eng
}

// Close flushes and stops every engine. Called on shutdown.
func (s *Sessions) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, eng := range s.engines {
		eng.Close()
		delete(s.engines, id)
	}
}
