package record

import "github.com/jackc/pgx/v5/pgconn"

// FromPgError bridges a PostgreSQL server error into a Record. The server
// reports where the error happened (PL/pgSQL functions and statement
// context) in the Where field, one context entry per line; those entries
// become the raw backtrace. The record is tagged RuntimeDatabase so the
// parser selects the database grammar.
func FromPgError(pgErr *pgconn.PgError) *Record {
	if pgErr == nil {
		return nil
	}
	return &Record{
		Type:      "postgres-" + pgErr.Code,
		Message:   pgErr.Message,
		Backtrace: SplitLines(pgErr.Where),
		Runtime:   RuntimeDatabase,
	}
}
