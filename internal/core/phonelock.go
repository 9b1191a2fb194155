package core

import "sync"

// phoneLocks serializes wallet-mutating work per phone number. The lock is
// held only across the resolve-to-execute span, so messages from different
// senders run fully in parallel while two sends from the same sender cannot
// race a balance read.
type phoneLocks struct {
	mu    sync.Mutex
	locks map[string]*phoneLock
}

type phoneLock struct {
	mu   sync.Mutex
	refs int
}

func newPhoneLocks() *phoneLocks {
	return &phoneLocks{
		locks: make(map[string]*phoneLock),
	}
}

// Lock acquires the mutex for phone and returns its unlock func. Entries are
// reference counted and removed when the last holder releases, so the table
// only holds numbers with in-flight work.
func (p *phoneLocks) Lock(phone string) func() {
	p.mu.Lock()
	entry, ok := p.locks[phone]
	if !ok {
		entry = &phoneLock{}
		p.locks[phone] = entry
	}
	entry.refs++
	p.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		p.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(p.locks, phone)
		}
		p.mu.Unlock()
	}
}
