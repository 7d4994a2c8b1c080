package qr

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/api"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/logger"
)

const MaxBodyBytes = 1 << 20

type Handler struct {
	logger logger.Logger
	repo   Repo
}

func NewHandler(repo Repo, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Handler{logger: log, repo: repo}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/qr-codes", h.ValidateCode)
}

type ValidateRequest struct {
	Code string `json:"code"`
}

// ValidateCode consumes a scanned QR code. A code already on record is
// a conflict so the caller can prompt a re-scan; otherwise the code is
// marked used and the ordering flow is unlocked.
func (h *Handler) ValidateCode(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		api.RespondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var req ValidateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		api.RespondError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if !ValidValue(req.Code) {
		log.Debug("invalid qr code value", "code", req.Code)
		api.RespondError(w, http.StatusBadRequest, "Code must be a table number or the takeaway marker")
		return
	}

	existing, err := h.repo.FindByValue(ctx, req.Code)
	if err != nil {
		log.Error("cannot check qr code", "error", err)
		api.RespondError(w, http.StatusInternalServerError, "Could not validate code")
		return
	}
	if existing != nil {
		log.Info("qr code already used", "code", req.Code)
		api.RespondError(w, http.StatusConflict, "Code has already been used")
		return
	}

	record := NewCode(req.Code)
	if err := h.repo.Create(ctx, record); err != nil {
		log.Error("cannot record qr code", "error", err)
		api.RespondError(w, http.StatusInternalServerError, "Could not validate code")
		return
	}

	log.Info("qr code accepted", "code", req.Code)
	api.RespondResultData(w, true, "Code accepted, ordering unlocked", record)
}

func (h *Handler) log(r *http.Request) logger.Logger {
	return h.logger.With("request_id", middleware.GetReqID(r.Context()))
}
