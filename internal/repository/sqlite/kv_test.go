package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sakif/omen/internal/apperror"
)

// newTestDB opens a fresh in-memory database that lives for one test.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGet_Missing(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Get(context.Background(), "pastOmens_guest")
	if err == nil {
		t.Fatal("Get() should error for a key that was never written")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestSetThenGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Set(ctx, "omenTheme", "light"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := db.Get(ctx, "omenTheme")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "light" {
		t.Errorf("Get() = %q, want %q", got, "light")
	}
}

func TestSet_Overwrites(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Set(ctx, "recentSearches_guest", `["owl"]`); err != nil {
		t.Fatalf("Set() first: %v", err)
	}
	if err := db.Set(ctx, "recentSearches_guest", `["raven","owl"]`); err != nil {
		t.Fatalf("Set() second: %v", err)
	}

	got, err := db.Get(ctx, "recentSearches_guest")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != `["raven","owl"]` {
		t.Errorf("Get() = %q, want the second write", got)
	}
}

func TestSet_EmptyValue(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Set(ctx, "k", ""); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := db.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v, an empty value is still present", err)
	}
	if got != "" {
		t.Errorf("Get() = %q, want empty", got)
	}
}

func TestDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Set(ctx, "favorites_12345-mock", "[]"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := db.Delete(ctx, "favorites_12345-mock"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err := db.Get(ctx, "favorites_12345-mock")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want ErrNotFound", err)
	}
}

func TestDelete_MissingKey(t *testing.T) {
	db := newTestDB(t)

	if err := db.Delete(context.Background(), "never-written"); err != nil {
		t.Errorf("Delete() of a missing key error = %v, want nil", err)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Set(ctx, "pastOmens_guest", "guest"); err != nil {
		t.Fatalf("Set() guest: %v", err)
	}
	if err := db.Set(ctx, "pastOmens_12345-mock", "user"); err != nil {
		t.Fatalf("Set() user: %v", err)
	}

	guest, _ := db.Get(ctx, "pastOmens_guest")
	user, _ := db.Get(ctx, "pastOmens_12345-mock")
	if guest != "guest" || user != "user" {
		t.Errorf("got guest=%q user=%q, want guest=%q user=%q", guest, user, "guest", "user")
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omen.db")
	ctx := context.Background()

	db, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := db.Set(ctx, "omenSettings", `{"showCultural":false,"showPsychological":true}`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("New() reopen error = %v", err)
	}
	t.Cleanup(func() { reopened.Close() })

	got, err := reopened.Get(ctx, "omenSettings")
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if got != `{"showCultural":false,"showPsychological":true}` {
		t.Errorf("Get() after reopen = %q", got)
	}
}
