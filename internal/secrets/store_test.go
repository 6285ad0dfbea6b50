package secrets_test

import (
	"context"
	"errors"
	"testing"

	"stockmeta/internal/secrets"
)

func openStore(t *testing.T) *secrets.Store {
	t.Helper()
	store, err := secrets.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSetAndGetRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, secrets.APIKeyName, "sk-test-123"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	got, err := store.Get(ctx, secrets.APIKeyName)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != "sk-test-123" {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestSetReplacesExistingValue(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, secrets.APIKeyName, "old"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := store.Set(ctx, secrets.APIKeyName, "new"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	got, err := store.Get(ctx, secrets.APIKeyName)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != "new" {
		t.Fatalf("expected replacement, got %q", got)
	}
}

func TestGetMissingSecret(t *testing.T) {
	store := openStore(t)
	_, err := store.Get(context.Background(), "absent")
	if !errors.Is(err, secrets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteSecret(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, secrets.APIKeyName, "value"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := store.Delete(ctx, secrets.APIKeyName); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := store.Get(ctx, secrets.APIKeyName); !errors.Is(err, secrets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting again is not an error.
	if err := store.Delete(ctx, secrets.APIKeyName); err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
}

func TestSetValidatesInputs(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "", "value"); err == nil {
		t.Fatal("expected error for empty name")
	}
	if err := store.Set(ctx, "name", "   "); err == nil {
		t.Fatal("expected error for blank value")
	}
}
