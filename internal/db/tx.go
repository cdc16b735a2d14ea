package db

import (
	"context"
	"database/sql"
)

// MakeTx is a function that creates a db transaction on a connection of its own.
// Both discard and commit release the connection, calling discard after
// commit is a no-op.
type MakeTx = func(ctx context.Context) (tx *Queries, discard, commit func() error, err error)

func NewMakeTx(database *sql.DB) MakeTx {
	return func(ctx context.Context) (*Queries, func() error, func() error, error) {
		conn, err := database.Conn(ctx)
		if err != nil {
			return nil, nil, nil, err
		}
		sqltx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			conn.Close()
			return nil, nil, nil, err
		}

		done := false
		release := func() {
			if done {
				return
			}
			done = true
			conn.Close()
		}

		txqry := New(sqltx)
		return txqry,
			func() error {
				if done {
					return nil
				}
				defer release()
				return sqltx.Rollback()
			},
			func() error {
				defer release()
				return sqltx.Commit()
			},
			nil
	}
}
