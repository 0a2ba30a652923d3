package v1

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/promo_cards/internal/domain"
	"github.com/kurochkinivan/promo_cards/internal/pipeline"
)

type LogosService interface {
	Limits() pipeline.Limits
	ListLogos() ([]*domain.LogoAsset, error)
	LogoExists(name string) (bool, error)
	UploadLogo(ctx context.Context, name string, r io.Reader, overwrite bool) error
	DeleteLogo(ctx context.Context, name string) error
}

type LogosHandler struct {
	log     *slog.Logger
	service LogosService
}

func NewLogosHandler(log *slog.Logger, service LogosService) *LogosHandler {
	return &LogosHandler{
		log:     log,
		service: service,
	}
}

type ListLogosResponse struct {
	Logos []*domain.LogoAsset `json:"logos"`
}

func (h *LogosHandler) ListLogos(w http.ResponseWriter, r *http.Request) {
	logos, err := h.service.ListLogos()
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, ListLogosResponse{Logos: logos})
}

// LogoExists answers HEAD requests so clients can ask before replacing a logo.
func (h *LogosHandler) LogoExists(w http.ResponseWriter, r *http.Request) {
	exists, err := h.service.LogoExists(chi.URLParam(r, "name"))
	if err != nil {
		status, _ := errorStatus(err)
		w.WriteHeader(status)
		return
	}

	if !exists {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *LogosHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	file, header, err := formFile(w, r, h.service.Limits().Logo)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	defer file.Close()

	overwrite, _ := strconv.ParseBool(r.URL.Query().Get("overwrite"))

	if err := h.service.UploadLogo(r.Context(), header.Filename, file, overwrite); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *LogosHandler) DeleteLogo(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteLogo(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
