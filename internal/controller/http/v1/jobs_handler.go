package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/promo_cards/internal/domain"
	"github.com/kurochkinivan/promo_cards/internal/pipeline"
)

// multipartOverhead leaves room for boundaries and headers around the file part,
// the exact size ceiling is enforced on the file content itself.
const multipartOverhead = 1 << 20

type CardsService interface {
	Limits() pipeline.Limits
	UploadSpreadsheet(ctx context.Context, name string, r io.Reader) (string, error)
	StartGeneration(ctx context.Context, ref, sessionID string) (*domain.Job, error)
	JobStatus(ctx context.Context, jobID string) (*domain.Job, error)
	OpenArchive(ctx context.Context, jobID string) (io.ReadCloser, error)
	ComposeJournal(ctx context.Context, jobID string) (*domain.Journal, error)
}

type JobsHandler struct {
	log     *slog.Logger
	service CardsService
}

func NewJobsHandler(log *slog.Logger, service CardsService) *JobsHandler {
	return &JobsHandler{
		log:     log,
		service: service,
	}
}

type UploadSpreadsheetResponse struct {
	UploadID string `json:"upload_id"`
}

func (h *JobsHandler) UploadSpreadsheet(w http.ResponseWriter, r *http.Request) {
	file, header, err := formFile(w, r, h.service.Limits().Spreadsheet)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	defer file.Close()

	ref, err := h.service.UploadSpreadsheet(r.Context(), header.Filename, file)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, UploadSpreadsheetResponse{UploadID: ref})
}

type StartJobRequest struct {
	UploadID  string `json:"upload_id"`
	SessionID string `json:"session_id"`
}

type StartJobResponse struct {
	JobID string `json:"job_id"`
	Total int    `json:"total"`
}

func (h *JobsHandler) StartJob(w http.ResponseWriter, r *http.Request) {
	var req StartJobRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	job, err := h.service.StartGeneration(r.Context(), req.UploadID, req.SessionID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusAccepted, StartJobResponse{JobID: job.ID, Total: job.Total})
}

func (h *JobsHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.JobStatus(r.Context(), chi.URLParam(r, "job_id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (h *JobsHandler) DownloadArchive(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")

	rc, err := h.service.OpenArchive(r.Context(), jobID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="cards-%s.zip"`, jobID))

	if _, err := io.Copy(w, rc); err != nil {
		h.log.ErrorContext(r.Context(), "failed to stream archive",
			slog.String("job_id", jobID),
			slog.String("err", err.Error()),
		)
	}
}

func (h *JobsHandler) ComposeJournal(w http.ResponseWriter, r *http.Request) {
	journal, err := h.service.ComposeJournal(r.Context(), r.URL.Query().Get("job_id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="journal.pdf"`)
	w.Write(journal.Content)
}

func formFile(w http.ResponseWriter, r *http.Request, limit int64) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, nil, fmt.Errorf("%w: request body exceeds %d bytes", domain.ErrTooLarge, maxErr.Limit)
		}
		return nil, nil, fmt.Errorf("%w: missing file field: %w", domain.ErrInvalidFormat, err)
	}

	return file, header, nil
}
