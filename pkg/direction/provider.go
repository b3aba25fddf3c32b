// Package direction supplies the current text direction to descendants and
// notifies subscribers when it changes.
package direction

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/themestyle/internal/logger"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

// Handler is called with the new direction after every change.
type Handler func(ctx context.Context, dir style.Direction)

// Subscription stops delivery to a registered handler.
type Subscription interface {
	Unsubscribe()
}

// Provider broadcasts the current Direction. The zero value is not usable;
// construct one with NewProvider.
type Provider struct {
	mu     sync.RWMutex
	dir    style.Direction
	subs   []subscriptionEntry
	nextID int
	logger *logger.Logger
}

// NewProvider returns a provider starting at initial.
func NewProvider(initial style.Direction, log *logger.Logger) *Provider {
	return &Provider{dir: normalize(initial), logger: log.Named("direction")}
}

// Get returns the current direction.
func (p *Provider) Get() style.Direction {
	if p == nil {
		return style.LTR
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.dir
}

// Set changes the direction and notifies subscribers synchronously. Setting
// the current direction again notifies nobody.
func (p *Provider) Set(ctx context.Context, dir style.Direction) {
	p.update(ctx, func(style.Direction) style.Direction { return dir })
}

// Flip toggles between LTR and RTL and returns the new direction.
func (p *Provider) Flip(ctx context.Context) style.Direction {
	return p.update(ctx, style.Direction.Flip)
}

func (p *Provider) update(ctx context.Context, next func(style.Direction) style.Direction) style.Direction {
	if p == nil {
		return style.LTR
	}

	p.mu.Lock()
	dir := normalize(next(p.dir))
	if p.dir == dir {
		p.mu.Unlock()
		return dir
	}
	p.dir = dir
	handlers := append([]subscriptionEntry(nil), p.subs...)
	p.mu.Unlock()

	p.logger.WithField("direction", dir.String()).Debug("direction changed")

	for _, entry := range handlers {
		entry.handler(ctx, dir)
	}
	return dir
}

// Subscribe registers handler for direction changes.
func (p *Provider) Subscribe(handler Handler) Subscription {
	if p == nil || handler == nil {
		return noopSubscription{}
	}

	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs = append(p.subs, subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{
		cancel: func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			for i, entry := range p.subs {
				if entry.id == id {
					p.subs = append(p.subs[:i:i], p.subs[i+1:]...)
					break
				}
			}
		},
	}
}

// Context returns ctx with only the direction replaced by the current one;
// ancestor theme and interface stay visible.
func (p *Provider) Context(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return style.WithDirection(ctx, p.Get())
}

func normalize(dir style.Direction) style.Direction {
	if dir == style.RTL {
		return style.RTL
	}
	return style.LTR
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler Handler
}
