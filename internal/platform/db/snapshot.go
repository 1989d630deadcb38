package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const snapshotPurpose = "store-snapshot"

type Sealer interface {
	Configured() bool
	Seal(purpose string, plain []byte) ([]byte, error)
	Open(purpose string, sealed []byte) ([]byte, error)
}

// SnapshotRepo persists serialised store snapshots, sealed when a key is set.
type SnapshotRepo struct {
	pool   *pgxpool.Pool
	sealer Sealer
	keep   int
}

func NewSnapshotRepo(pool *pgxpool.Pool, sealer Sealer) *SnapshotRepo {
	return &SnapshotRepo{pool: pool, sealer: sealer, keep: 10}
}

// Save writes a snapshot and prunes all but the newest few.
func (r *SnapshotRepo) Save(ctx context.Context, version uint64, payload []byte) error {
	sealed, err := r.sealer.Seal(snapshotPurpose, payload)
	if err != nil {
		return fmt.Errorf("seal snapshot: %w", err)
	}
	if _, err := r.pool.Exec(ctx,
		"INSERT INTO store_snapshots (store_version, encrypted, payload) VALUES ($1, $2, $3)",
		int64(version), r.sealer.Configured(), sealed,
	); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	if _, err := r.pool.Exec(ctx, `
    DELETE FROM store_snapshots
    WHERE id NOT IN (SELECT id FROM store_snapshots ORDER BY id DESC LIMIT $1)
  `, r.keep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// Latest returns the newest snapshot payload, or ok=false when none exist.
func (r *SnapshotRepo) Latest(ctx context.Context) ([]byte, bool, error) {
	var (
		encrypted bool
		payload   []byte
	)
	err := r.pool.QueryRow(ctx,
		"SELECT encrypted, payload FROM store_snapshots ORDER BY id DESC LIMIT 1",
	).Scan(&encrypted, &payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load snapshot: %w", err)
	}
	if !encrypted {
		return payload, true, nil
	}
	if !r.sealer.Configured() {
		return nil, false, errors.New("snapshot is encrypted but DATA_ENCRYPTION_KEY is not set")
	}
	plain, err := r.sealer.Open(snapshotPurpose, payload)
	if err != nil {
		return nil, false, err
	}
	return plain, true, nil
}

func (r *SnapshotRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
