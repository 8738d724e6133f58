package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guttosm/dexboard/internal/domain/models"
	pq "github.com/lib/pq"
)

// ErrRunLogNotMigrated is returned when the runs table does not exist yet.
var ErrRunLogNotMigrated = errors.New("run log table missing; apply db/migrations")

// undefinedTable is the Postgres SQLSTATE for a missing relation.
const undefinedTable = "42P01"

// RunsRepository defines the contract for the run log.
type RunsRepository interface {
	InsertRun(ctx context.Context, run models.Run) error
	InsertRuns(ctx context.Context, runs []models.Run) error
	ListRecentRuns(ctx context.Context, token string, limit int) ([]models.Run, error)
	Ping(ctx context.Context) error
}

type runsRepository struct {
	db *sql.DB
}

func NewRunsRepository(db *sql.DB) RunsRepository {
	return &runsRepository{db: db}
}

// InsertRun appends a single run record.
func (r *runsRepository) InsertRun(ctx context.Context, run models.Run) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO runs (
			run_id, token, network, demo, swaps_fetched, swaps_skipped,
			total_traders, total_volume_usd, status, error, started_at, finished_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		run.RunID, run.Token, run.Network, run.Demo, run.SwapsFetched, run.SwapsSkipped,
		run.TotalTraders, run.TotalVolumeUSD, run.Status, run.Error, run.StartedAt, run.FinishedAt,
	)
	return translate(err)
}

// InsertRuns appends many run records in a single transaction using COPY.
func (r *runsRepository) InsertRuns(ctx context.Context, runs []models.Run) error {
	if len(runs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"runs",
		"run_id",
		"token",
		"network",
		"demo",
		"swaps_fetched",
		"swaps_skipped",
		"total_traders",
		"total_volume_usd",
		"status",
		"error",
		"started_at",
		"finished_at",
	))
	if err != nil {
		_ = tx.Rollback()
		return translate(err)
	}

	for _, run := range runs {
		if _, err := stmt.ExecContext(ctx,
			run.RunID,
			run.Token,
			run.Network,
			run.Demo,
			run.SwapsFetched,
			run.SwapsSkipped,
			run.TotalTraders,
			run.TotalVolumeUSD.String(),
			run.Status,
			run.Error,
			run.StartedAt,
			run.FinishedAt,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// ListRecentRuns returns up to limit runs, newest first. An empty token lists
// runs for every token.
func (r *runsRepository) ListRecentRuns(ctx context.Context, token string, limit int) ([]models.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	conditions := "TRUE"
	var args []interface{}
	if token != "" {
		args = append(args, token)
		conditions = fmt.Sprintf("token = $%d", len(args))
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT run_id, token, network, demo, swaps_fetched, swaps_skipped,
		       total_traders, total_volume_usd, status, error, started_at, finished_at
		FROM runs
		WHERE %s
		ORDER BY started_at DESC
		LIMIT $%d
	`, conditions, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.Run, 0, limit)
	for rows.Next() {
		var run models.Run
		if err := rows.Scan(
			&run.RunID, &run.Token, &run.Network, &run.Demo, &run.SwapsFetched, &run.SwapsSkipped,
			&run.TotalTraders, &run.TotalVolumeUSD, &run.Status, &run.Error, &run.StartedAt, &run.FinishedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// Ping checks connectivity to the run log database.
func (r *runsRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// translate maps well-known Postgres errors to package sentinels.
func translate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
		return fmt.Errorf("%w: %s", ErrRunLogNotMigrated, pqErr.Message)
	}
	return err
}
