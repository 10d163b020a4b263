package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileKVSetGetDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	kv, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}

	if _, err := kv.Get(ctx, KeySession); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unset key, got %v", err)
	}

	if err := kv.Set(ctx, KeySession, "token-123"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := kv.Get(ctx, KeySession)
	if err != nil || v != "token-123" {
		t.Fatalf("Get after Set: v=%q err=%v", v, err)
	}

	if err := kv.Delete(ctx, KeySession, KeyLastPage); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := kv.Get(ctx, KeySession); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestFileKVSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	kv, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	if err := kv.Set(ctx, KeyLastPage, "coupons"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	v, err := reopened.Get(ctx, KeyLastPage)
	if err != nil || v != "coupons" {
		t.Fatalf("expected persisted value after reopen, got v=%q err=%v", v, err)
	}
}

func TestFileKVRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := NewFileKV(path); err == nil {
		t.Fatal("expected error for corrupt storage file")
	}
}
