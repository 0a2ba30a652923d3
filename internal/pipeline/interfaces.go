package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/kurochkinivan/promo_cards/internal/domain"
)

type CardRenderer interface {
	Render(row *domain.RowRecord, logo *domain.LogoAsset) (*domain.Artifact, error)
	Format() domain.Format
}

type JournalComposer interface {
	Compose(artifacts []*domain.Artifact) (*domain.Journal, error)
}

type LogoResolver interface {
	Resolve(supplier string) (*domain.LogoAsset, error)
}

type LogoStore interface {
	LogoResolver
	List() ([]*domain.LogoAsset, error)
	Exists(name string) (bool, error)
	Save(name string, content []byte, overwrite bool) error
	Delete(name string) error
}

type UploadStore interface {
	Save(data []byte) (string, error)
	Read(ref string) ([]byte, error)
	Delete(ref string) error
	RemoveOlderThan(age time.Duration) (int, error)
}

type Publisher interface {
	Publish(sessionID string, event domain.Event)
}

type ArchiveStore interface {
	Put(ctx context.Context, key string, r io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type JobSaver interface {
	SaveJob(ctx context.Context, job *domain.Job) error
}

type ArtifactsSaver interface {
	SaveArtifacts(ctx context.Context, artifacts ...domain.ArtifactRecord) error
}

type JobsProvider interface {
	JobByID(ctx context.Context, id string) (*domain.Job, error)
	LastSucceededJob(ctx context.Context) (*domain.Job, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
