package form

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/formstate/pkg/logger"
)

// Store is where persisted snapshots go. storage.Store and every backend in
// this module satisfy it.
type Store interface {
	Save(ctx context.Context, key string, data []byte) error
}

// persistLocked encodes the current state and queues it for writing.
// Must be called with c.mu held. No-op when persistence is off.
func (c *Controller) persistLocked() {
	if c.persist == nil {
		return
	}
	data, err := c.codec.Marshal(c.snapshotLocked())
	if err != nil {
		c.log.Debug("form state encoding failed", slog.String("codec", c.codec.Name()), logger.Error(err))
		return
	}
	c.persist.enqueue(data)
}

// persister writes snapshots to a store from a single goroutine. Only the
// latest queued snapshot is written; intermediate ones are skipped.
type persister struct {
	ctx   context.Context
	store Store
	key   string
	log   *slog.Logger

	mu      sync.Mutex
	next    []byte
	dirty   bool
	running bool
	pending tracker
}

func newPersister(ctx context.Context, store Store, key string, log *slog.Logger) *persister {
	return &persister{ctx: ctx, store: store, key: key, log: log}
}

func (p *persister) enqueue(data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.next = data
	p.dirty = true
	if !p.running {
		p.running = true
		p.pending.add()
		go p.drain()
	}
}

func (p *persister) drain() {
	defer p.pending.done()

	for {
		p.mu.Lock()
		if !p.dirty || p.ctx.Err() != nil {
			p.running = false
			p.mu.Unlock()
			return
		}
		data := p.next
		p.next, p.dirty = nil, false
		p.mu.Unlock()

		if err := p.store.Save(p.ctx, p.key, data); err != nil {
			p.log.Debug("form state write failed", logger.Error(err))
		}
	}
}

func (p *persister) wait(ctx context.Context) error {
	return p.pending.wait(ctx)
}
