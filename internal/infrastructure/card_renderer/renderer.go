package card_renderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/kurochkinivan/promo_cards/internal/domain"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	cardWidth    = 800
	cardHeight   = 1000
	margin       = 40
	headerHeight = 200

	logoMaxWidth  = 280
	logoMaxHeight = 140

	titleScale = 4
	fieldScale = 2
	lineGap    = 12
)

var (
	background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	accent     = color.NRGBA{R: 236, G: 28, B: 36, A: 255}
	titleColor = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	fieldColor = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
	headColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Renderer draws one card per row. It keeps no state between calls and is safe
// for concurrent use.
type Renderer struct {
	format domain.Format
}

func New(format domain.Format) *Renderer {
	if format != domain.FormatJPEG {
		format = domain.FormatPNG
	}

	return &Renderer{format: format}
}

func (r *Renderer) Format() domain.Format {
	return r.format
}

func (r *Renderer) Render(row *domain.RowRecord, logo *domain.LogoAsset) (*domain.Artifact, error) {
	title := row.Label()
	if title == "" {
		return nil, fmt.Errorf("%w: row %d has no %s", domain.ErrRender, row.Index+1, domain.ColumnTitle)
	}

	canvas := imaging.New(cardWidth, cardHeight, background)
	draw.Draw(canvas, image.Rect(0, 0, cardWidth, headerHeight), image.NewUniform(accent), image.Point{}, draw.Src)

	number := fmt.Sprintf("#%d", row.Index+1)
	canvas = overlayText(canvas, number, image.Pt(margin, margin), fieldScale, headColor)

	if logo != nil && len(logo.Content) > 0 {
		img, err := imaging.Decode(bytes.NewReader(logo.Content))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode logo %q: %w", domain.ErrRender, logo.Name, err)
		}

		img = imaging.Fit(img, logoMaxWidth, logoMaxHeight, imaging.Lanczos)
		pos := image.Pt(cardWidth-margin-img.Bounds().Dx(), (headerHeight-img.Bounds().Dy())/2)
		canvas = imaging.Overlay(canvas, img, pos, 1.0)
	}

	y := headerHeight + margin
	for _, line := range wrap(title, maxChars(titleScale)) {
		canvas = overlayText(canvas, line, image.Pt(margin, y), titleScale, titleColor)
		y += lineHeight(titleScale)
	}

	y += margin
	for i, column := range row.Columns {
		if i >= len(row.Values) || row.Values[i] == "" || column == domain.ColumnTitle || column == domain.ColumnSupplier {
			continue
		}

		for _, line := range wrap(column+": "+row.Values[i], maxChars(fieldScale)) {
			if y+lineHeight(fieldScale) > cardHeight-margin {
				break
			}

			canvas = overlayText(canvas, line, image.Pt(margin, y), fieldScale, fieldColor)
			y += lineHeight(fieldScale)
		}
	}

	content, err := r.encode(canvas)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode card %d: %w", domain.ErrRender, row.Index+1, err)
	}

	return &domain.Artifact{
		RowIndex: row.Index,
		Label:    title,
		Format:   r.format,
		Content:  content,
	}, nil
}

func (r *Renderer) encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer

	var err error
	switch r.format {
	case domain.FormatJPEG:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90))
	default:
		err = imaging.Encode(&buf, img, imaging.PNG)
	}
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// overlayText draws s with the fixed 7x13 face and scales it up by nearest
// neighbour so glyph edges stay crisp.
func overlayText(dst *image.NRGBA, s string, pos image.Point, scale int, c color.Color) *image.NRGBA {
	face := basicfont.Face7x13

	width := font.MeasureString(face, s).Ceil()
	if width == 0 {
		return dst
	}

	txt := image.NewNRGBA(image.Rect(0, 0, width, face.Height))
	d := &font.Drawer{
		Dst:  txt,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)

	scaled := imaging.Resize(txt, width*scale, face.Height*scale, imaging.NearestNeighbor)

	return imaging.Overlay(dst, scaled, pos, 1.0)
}

func lineHeight(scale int) int {
	return basicfont.Face7x13.Height*scale + lineGap
}

func maxChars(scale int) int {
	return (cardWidth - 2*margin) / (basicfont.Face7x13.Advance * scale)
}

func wrap(s string, width int) []string {
	runes := []rune(s)

	var lines []string
	for len(runes) > width {
		cut := width
		for i := width; i > width/2; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}

		lines = append(lines, string(runes[:cut]))
		runes = []rune(strings.TrimLeft(string(runes[cut:]), " "))
	}

	return append(lines, string(runes))
}
