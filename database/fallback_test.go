package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestFindWithFallbackReturnsValue(t *testing.T) {
	restore := DB
	DB = &gorm.DB{}
	defer func() { DB = restore }()

	got := FindWithFallback([]string{}, func(db *gorm.DB) ([]string, error) {
		return []string{"Maasai Mara"}, nil
	})
	if len(got) != 1 || got[0] != "Maasai Mara" {
		t.Fatalf("expected operation result, got %v", got)
	}
}

func TestFindWithFallbackOnOperationFailure(t *testing.T) {
	restore := DB
	DB = &gorm.DB{}
	defer func() { DB = restore }()

	fallback := []string{"default"}
	got := FindWithFallback(fallback, func(db *gorm.DB) ([]string, error) {
		return nil, errors.New("relation does not exist")
	})
	if len(got) != 1 || got[0] != "default" {
		t.Fatalf("expected fallback on failure, got %v", got)
	}
}

func TestFindWithFallbackWhenStoreNotInitialised(t *testing.T) {
	restore := DB
	DB = nil
	defer func() { DB = restore }()

	called := false
	got := FindWithFallback(42, func(db *gorm.DB) (int, error) {
		called = true
		return 0, nil
	})
	if called {
		t.Fatal("operation must not run against an uninitialised store")
	}
	if got != 42 {
		t.Fatalf("expected fallback 42, got %d", got)
	}
}

type fakeNetError struct{}

func (fakeNetError) Error() string   { return "dial tcp: network is unreachable" }
func (fakeNetError) Timeout() bool   { return true }
func (fakeNetError) Temporary() bool { return true }

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "net error", err: fakeNetError{}, want: "connection"},
		{name: "wrapped net error", err: fmt.Errorf("query: %w", fakeNetError{}), want: "connection"},
		{name: "deadline", err: context.DeadlineExceeded, want: "connection"},
		{name: "invalid db", err: gorm.ErrInvalidDB, want: "connection"},
		{name: "refused", err: errors.New("dial tcp 127.0.0.1:5432: connection refused"), want: "connection"},
		{name: "malformed row", err: errors.New("sql: Scan error on column index 2"), want: "other"},
		{name: "missing relation", err: errors.New(`relation "bookings" does not exist`), want: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyError(tt.err); got != tt.want {
				t.Fatalf("classifyError(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
