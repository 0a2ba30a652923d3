package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/promo_cards/internal/domain"
)

const TableJobs = "jobs"

var jobColumns = []string{
	"id",
	"session_id",
	"status",
	"total",
	"processed",
	"current_label",
	"archive_key",
	"error_message",
	"created_at",
	"finished_at",
}

type JobsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewJobsRepository(pool *pgxpool.Pool) *JobsRepository {
	return &JobsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *JobsRepository) SaveJob(ctx context.Context, job *domain.Job) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableJobs).
		Columns(jobColumns...).
		Values(
			job.ID,
			job.SessionID,
			job.Status,
			job.Total,
			job.Processed,
			job.CurrentLabel,
			job.ArchiveKey,
			job.ErrorMessage,
			job.CreatedAt,
			job.FinishedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			processed = EXCLUDED.processed,
			current_label = EXCLUDED.current_label,
			archive_key = EXCLUDED.archive_key,
			error_message = EXCLUDED.error_message,
			finished_at = EXCLUDED.finished_at
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *JobsRepository) JobByID(ctx context.Context, id string) (*domain.Job, error) {
	return r.selectJob(ctx, r.qb.
		Select(jobColumns...).
		From(TableJobs).
		Where(sq.Eq{"id": id}),
		"job "+id,
	)
}

func (r *JobsRepository) LastSucceededJob(ctx context.Context) (*domain.Job, error) {
	return r.selectJob(ctx, r.qb.
		Select(jobColumns...).
		From(TableJobs).
		Where(sq.Eq{"status": domain.StatusSucceeded}).
		OrderBy("finished_at DESC").
		Limit(1),
		"succeeded job",
	)
}

func (r *JobsRepository) selectJob(ctx context.Context, query sq.SelectBuilder, what string) (*domain.Job, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	job, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Job])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFoundError(what)
	}
	if err != nil {
		return nil, collectRowsError(err)
	}

	return job, nil
}
