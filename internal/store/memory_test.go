package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/store"
)

func TestMemoryStore_GetSetDelete(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := kv.Set(ctx, "product:1", []byte(`{"id":"1"}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, err := kv.Get(ctx, "product:1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(val) != `{"id":"1"}` {
		t.Fatalf("Get returned %q", val)
	}

	if err := kv.Delete(ctx, "product:1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := kv.Get(ctx, "product:1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStore_GetByPrefix(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx := context.Background()

	_ = kv.Set(ctx, "product:1", []byte("a"))
	_ = kv.Set(ctx, "product:2", []byte("b"))
	_ = kv.Set(ctx, "order:1", []byte("c"))

	vals, err := kv.GetByPrefix(ctx, "product:")
	if err != nil {
		t.Fatalf("GetByPrefix: %v", err)
	}
	if len(vals) != 2 {
		t.Fatalf("expected 2 values, got %d", len(vals))
	}

	vals, err = kv.GetByPrefix(ctx, "customer:")
	if err != nil {
		t.Fatalf("GetByPrefix empty: %v", err)
	}
	if len(vals) != 0 {
		t.Fatalf("expected 0 values, got %d", len(vals))
	}
}

func TestMemoryStore_ValueIsolation(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx := context.Background()

	src := []byte("original")
	_ = kv.Set(ctx, "k", src)
	src[0] = 'X'

	val, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(val) != "original" {
		t.Fatalf("stored value was mutated through the caller's slice: %q", val)
	}
}
