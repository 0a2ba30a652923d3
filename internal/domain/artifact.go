package domain

type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

func (f Format) Extension() string {
	if f == FormatJPEG {
		return ".jpg"
	}

	return ".png"
}

type Artifact struct {
	RowIndex int
	Label    string
	Format   Format
	Content  []byte
}

// ArtifactRecord describes an artifact that has been packaged into an archive.
type ArtifactRecord struct {
	JobID    string `csv:"-"     db:"job_id"`
	RowIndex int    `csv:"index" db:"row_index"`
	File     string `csv:"file"  db:"file"`
	Label    string `csv:"label" db:"label"`
}

// Journal is a paginated document with one artifact per page. Pages lists the
// source rows in page order.
type Journal struct {
	Content []byte
	Pages   []ArtifactRecord
}
