package record_test

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/thanhminhmr/go-notifier/record"
)

func TestFromPgError(t *testing.T) {
	bridged := record.FromPgError(&pgconn.PgError{
		Severity: "ERROR",
		Code:     "P0001",
		Message:  "price must be positive",
		Where:    "PL/pgSQL function check_price() line 4 at RAISE\nSQL statement \"SELECT check_price()\"",
	})
	if bridged.Type != "postgres-P0001" {
		t.Fatalf("unexpected type: %q", bridged.Type)
	}
	if bridged.Message != "price must be positive" {
		t.Fatalf("unexpected message: %q", bridged.Message)
	}
	if bridged.Runtime != record.RuntimeDatabase {
		t.Fatalf("expected the database runtime tag, got %d", bridged.Runtime)
	}
	if len(bridged.Backtrace) != 2 {
		t.Fatalf("expected 2 backtrace lines, got %v", bridged.Backtrace)
	}
}

func TestFromPgErrorNil(t *testing.T) {
	if bridged := record.FromPgError(nil); bridged != nil {
		t.Fatalf("expected nil record, got %+v", bridged)
	}
}
