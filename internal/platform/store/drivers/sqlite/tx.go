package sqlite

import (
	"context"
	"database/sql"

	"github.com/prajasetu/prajasetu/internal/platform/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller commits/rolls back; outer DB stays open

// Ping is a no-op for transactions; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                   { return &usersRepo{q: t.tx} }
func (t *txStore) Invites() store.Invites               { return &invitesRepo{q: t.tx} }
func (t *txStore) LeaderProfiles() store.LeaderProfiles { return &leaderProfilesRepo{q: t.tx} }
func (t *txStore) Events() store.Events                 { return &eventsRepo{q: t.tx} }
func (t *txStore) MediaBytes() store.MediaBytes         { return &mediaBytesRepo{q: t.tx} }
func (t *txStore) Comments() store.Comments             { return &commentsRepo{q: t.tx} }
func (t *txStore) Locations() store.Locations           { return &locationsRepo{q: t.tx} }
func (t *txStore) Banners() store.Banners               { return &bannersRepo{q: t.tx} }
func (t *txStore) Settings() store.Settings             { return &settingsRepo{q: t.tx} }
func (t *txStore) Analytics() store.Analytics           { return &analyticsRepo{q: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx starts
