package cart

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/koraytemur/hirdavat/internal/repository"
)

// persistTimeout bounds each background write to the key-value store.
const persistTimeout = 5 * time.Second

// persister mirrors cart state to the key-value store in the background.
// Writes coalesce per key: only the latest enqueued value for a key is
// written, so a burst of mutations costs one write. Failures are logged and
// dropped; the in-memory cart stays authoritative.
type persister struct {
	kv     repository.KV
	logger *slog.Logger

	mu      sync.Mutex
	pending map[string][]byte

	notify chan struct{}
	stop   chan struct{}
	done   chan struct{}
}

func newPersister(kv repository.KV, logger *slog.Logger) *persister {
	p := &persister{
		kv:      kv,
		logger:  logger,
		pending: make(map[string][]byte),
		notify:  make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// enqueue records the latest value for key and wakes the worker. Never
// blocks the caller.
func (p *persister) enqueue(key string, value []byte) {
	p.mu.Lock()
	p.pending[key] = value
	p.mu.Unlock()

	select {
	case p.notify <- struct{}{}:
	default:
	}
}

func (p *persister) run() {
	for {
		select {
		case <-p.notify:
			p.flush()
		case <-p.stop:
			// Final flush so a clean shutdown does not lose the last write.
			p.flush()
			close(p.done)
			return
		}
	}
}

// flush writes all pending values. Entries enqueued during the flush are
// picked up on the next wakeup.
func (p *persister) flush() {
	p.mu.Lock()
	batch := p.pending
	p.pending = make(map[string][]byte)
	p.mu.Unlock()

	for key, value := range batch {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		err := p.kv.Set(ctx, key, value)
		cancel()
		if err != nil {
			p.logger.Warn("cart persist failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}
}

// close stops the worker after one final flush and waits for it to exit.
func (p *persister) close() {
	close(p.stop)
	<-p.done
}
