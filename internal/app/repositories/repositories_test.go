package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/nmcleod/rollcall/internal/db"
)

// The transactional closures in this package must match the pool wrapper's
// callback type.
var _ db.TransactionFn = func(ctx context.Context, tx pgx.Tx) error { return nil }
