package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/promo_cards/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors to a status and a message safe to show to clients.
// Input problems are described, everything else is reported generically.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, message := errorStatus(err)

	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}

	writeJSON(w, status, ErrorResponse{Error: message})
}

func errorStatus(err error) (int, string) {
	var (
		maxErr *http.MaxBytesError
		rowErr *domain.RowError
	)

	switch {
	case errors.As(err, &maxErr), errors.Is(err, domain.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, domain.ErrTooLarge.Error()
	case errors.Is(err, domain.ErrInvalidFormat):
		return http.StatusUnsupportedMediaType, err.Error()
	case errors.As(err, &rowErr):
		return http.StatusUnprocessableEntity, rowErr.Error()
	case errors.Is(err, domain.ErrMalformedContent):
		return http.StatusUnprocessableEntity, domain.ErrMalformedContent.Error()
	case errors.Is(err, domain.ErrInvalidSession):
		return http.StatusBadRequest, domain.ErrInvalidSession.Error()
	case errors.Is(err, domain.ErrDuplicateSession):
		return http.StatusConflict, domain.ErrDuplicateSession.Error()
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, domain.ErrAlreadyExists.Error()
	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, domain.ErrJobNotFound.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, domain.ErrNotFound.Error()
	case errors.Is(err, domain.ErrNotReady):
		return http.StatusTooEarly, domain.ErrNotReady.Error()
	case errors.Is(err, domain.ErrJobFailed):
		return http.StatusGone, err.Error()
	case errors.Is(err, domain.ErrNoArtifactsAvailable):
		return http.StatusNotFound, domain.ErrNoArtifactsAvailable.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
