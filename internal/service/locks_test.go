package service_test

import (
	"sync"
	"testing"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/service"
)

func TestKeyedLocks_EntriesReleasedAfterUse(t *testing.T) {
	locks := service.NewKeyedLocks()

	var wg sync.WaitGroup
	counter := 0
	sets := [][]string{
		{"product:1", "product:2"},
		{"product:2", "product:3"},
		{"product:3", "product:1", "product:3"}, // duplicate key locked once
	}
	for i := 0; i < 50; i++ {
		for _, keys := range sets {
			wg.Add(1)
			go func(keys []string) {
				defer wg.Done()
				unlock := locks.LockAll(keys)
				counter++
				unlock()
			}(keys)
		}
	}
	wg.Wait()

	if counter != 150 {
		t.Fatalf("counter = %d, want 150 (overlapping lock sets must serialize)", counter)
	}
	if n := locks.Len(); n != 0 {
		t.Fatalf("lock map holds %d entries after all were released, want 0", n)
	}
}
