package service

import (
	"sync"

	domainauth "github.com/tijaniyah/companion/internal/domain/auth"
)

// stateBroadcaster fans session states out to subscribers. Each subscriber channel holds
// at most one pending state; a newer state replaces an unread one.
type stateBroadcaster struct {
	mu   sync.Mutex
	subs map[chan domainauth.State]struct{}
}

func (b *stateBroadcaster) subscribe() (func(), <-chan domainauth.State) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs == nil {
		b.subs = make(map[chan domainauth.State]struct{})
	}
	ch := make(chan domainauth.State, 1)
	b.subs[ch] = struct{}{}

	unsub := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[ch]; !ok {
			return
		}
		delete(b.subs, ch)
		drainAndClose(ch)
	}
	return unsub, ch
}

func (b *stateBroadcaster) publish(st domainauth.State) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- st:
			continue
		default:
		}
		// Replace the unread state.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- st:
		default:
		}
	}
}

func drainAndClose(ch chan domainauth.State) {
	for {
		select {
		case <-ch:
		default:
			close(ch)
			return
		}
	}
}
