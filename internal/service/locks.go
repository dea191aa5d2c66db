package service

import (
	"sort"
	"sync"
)

// KeyedLocks serializes read-check-write sequences per product. The
// underlying store has no multi-key transactions, so without this two
// concurrent orders could both pass the stock check before either
// decrement lands. Entries are reference counted and removed once the
// last holder releases, so the map stays bounded by the locks in flight.
type KeyedLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedLocks() *KeyedLocks {
	return &KeyedLocks{locks: map[string]*keyLock{}}
}

func (k *KeyedLocks) lock(key string) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()
	l.mu.Lock()
}

func (k *KeyedLocks) unlock(key string) {
	k.mu.Lock()
	l := k.locks[key]
	if l != nil {
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
	}
	k.mu.Unlock()
	if l != nil {
		l.mu.Unlock()
	}
}

// Len reports the number of keys currently held or awaited.
func (k *KeyedLocks) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}

// LockAll acquires locks for every key in sorted order so two orders
// touching the same products cannot deadlock. Duplicate keys are locked
// once. Returns the unlock function.
func (k *KeyedLocks) LockAll(keys []string) func() {
	uniq := make([]string, 0, len(keys))
	seen := map[string]struct{}{}
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		uniq = append(uniq, key)
	}
	sort.Strings(uniq)

	for _, key := range uniq {
		k.lock(key)
	}
	return func() {
		for i := len(uniq) - 1; i >= 0; i-- {
			k.unlock(uniq[i])
		}
	}
}
