package snapshotrepo

import (
	"context"
	"encoding/json"
	"errors"

	"superwallet/model"
	"superwallet/util/database"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresRepo keeps the whole snapshot as one JSONB row. The revision column
// backs last-writer detection: a Save whose revision is not strictly newer
// than the stored one loses and reports ErrConflict.
type postgresRepo struct {
	db *database.DB
}

func NewPostgres(ctx context.Context, db *database.DB) (Repo, error) {
	const ddl = `
CREATE TABLE IF NOT EXISTS wallet_snapshots (
    id         smallint PRIMARY KEY,
    revision   bigint NOT NULL,
    data       jsonb NOT NULL,
    updated_at timestamptz NOT NULL DEFAULT now()
)`
	if _, err := db.Pool.Exec(ctx, ddl); err != nil {
		return nil, err
	}
	return &postgresRepo{db: db}, nil
}

func (r *postgresRepo) Load(ctx context.Context) (*model.State, error) {
	const q = `SELECT data FROM wallet_snapshots WHERE id = 1`
	var raw []byte
	err := r.db.Pool.QueryRow(ctx, q).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var st model.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, err
	}
	if st.SchemaVersion != model.SchemaVersion {
		return nil, nil
	}
	return &st, nil
}

func (r *postgresRepo) Save(ctx context.Context, st *model.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}

	const qUp = `
UPDATE wallet_snapshots
SET revision=$1, data=$2, updated_at=now()
WHERE id=1 AND revision < $1`
	tag, err := r.db.Pool.Exec(ctx, qUp, st.Revision, raw)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// either the row does not exist yet or a concurrent writer won
	const qIns = `INSERT INTO wallet_snapshots (id, revision, data) VALUES (1, $1, $2)`
	if _, err := r.db.Pool.Exec(ctx, qIns, st.Revision, raw); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (r *postgresRepo) Close() error {
	r.db.Close()
	return nil
}
