package journal_composer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/promo_cards/internal/domain"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Row heights in millimetres, chosen so one card fills exactly one A4 page.
const (
	titleHeight  = 10
	cardHeight   = 230
	footerHeight = 8
)

type Composer struct{}

func New() *Composer {
	return &Composer{}
}

// Compose lays the artifacts out one per page in row order.
func (c *Composer) Compose(artifacts []*domain.Artifact) (*domain.Journal, error) {
	if len(artifacts) == 0 {
		return nil, domain.ErrNoArtifactsAvailable
	}

	ordered := make([]*domain.Artifact, len(artifacts))
	copy(ordered, artifacts)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].RowIndex < ordered[j].RowIndex })

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	pages := make([]domain.ArtifactRecord, 0, len(ordered))
	for i, a := range ordered {
		m.AddPages(page.New().Add(
			text.NewRow(titleHeight, a.Label, props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Align: align.Center,
			}),
			image.NewFromBytesRow(cardHeight, a.Content, imageExtension(a.Format), props.Rect{
				Center:  true,
				Percent: 100,
			}),
			text.NewRow(footerHeight, fmt.Sprintf("%d / %d", i+1, len(ordered)), props.Text{
				Size:  8,
				Align: align.Center,
			}),
		))

		pages = append(pages, domain.ArtifactRecord{RowIndex: a.RowIndex, Label: a.Label})
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate document: %w", domain.ErrComposition, err)
	}

	content := doc.GetBytes()

	count, err := api.PageCount(bytes.NewReader(content), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read generated document: %w", domain.ErrComposition, err)
	}

	if count != len(pages) {
		return nil, fmt.Errorf("%w: generated %d pages, expected %d", domain.ErrComposition, count, len(pages))
	}

	return &domain.Journal{
		Content: content,
		Pages:   pages,
	}, nil
}

func imageExtension(f domain.Format) extension.Type {
	if f == domain.FormatJPEG {
		return extension.Jpg
	}

	return extension.Png
}
