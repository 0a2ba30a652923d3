package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/promo_cards/internal/domain"
)

const TableArtifacts = "artifacts"

type ArtifactsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewArtifactsRepository(pool *pgxpool.Pool) *ArtifactsRepository {
	return &ArtifactsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ArtifactsRepository) SaveArtifacts(ctx context.Context, artifacts ...domain.ArtifactRecord) error {
	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableArtifacts}, []string{
		"job_id",
		"row_index",
		"file",
		"label",
	}, pgx.CopyFromSlice(len(artifacts), func(i int) ([]any, error) {
		return []any{
			artifacts[i].JobID,
			artifacts[i].RowIndex,
			artifacts[i].File,
			artifacts[i].Label,
		}, nil
	}))
	if err != nil {
		return fmt.Errorf("failed to save artifacts: %w", err)
	}

	if copied != int64(len(artifacts)) {
		return fmt.Errorf("failed to save artifacts: copied %d rows, expected %d", copied, len(artifacts))
	}

	return nil
}
