package menu

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

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
	r.Route("/menus", func(r chi.Router) {
		r.Get("/", h.ListMenus)
		r.Post("/", h.CreateMenu)
		r.Put("/{id}", h.UpdateMenu)
		r.Delete("/{id}", h.DeleteMenu)
	})
}

func (h *Handler) ListMenus(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)

	items, err := h.repo.List(r.Context())
	if err != nil {
		log.Error("error retrieving menus", "error", err)
		api.RespondError(w, http.StatusInternalServerError, "Could not retrieve menus")
		return
	}
	if items == nil {
		items = []*MenuItem{}
	}

	api.RespondData(w, "Success", items)
}

func (h *Handler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)
	ctx := r.Context()

	var item MenuItem
	if !h.decode(w, r, &item, log) {
		return
	}

	item.Name = ToTitleCase(item.Name)

	if errs := ValidateCreateMenuItem(&item); len(errs) > 0 {
		log.Debug("menu validation failed", "errors", errs)
		api.RespondError(w, http.StatusBadRequest, errs[0].Message)
		return
	}

	existing, err := h.repo.FindByName(ctx, item.Name)
	if err != nil {
		log.Error("cannot check for existing menu", "error", err)
		api.RespondError(w, http.StatusInternalServerError, "Could not create menu")
		return
	}
	if existing != nil {
		api.RespondResultData(w, false, "Menu already exists", existing)
		return
	}

	item.BeforeCreate()
	if err := h.repo.Create(ctx, &item); err != nil {
		log.Error("cannot create menu", "error", err)
		api.RespondError(w, http.StatusInternalServerError, "Could not create menu")
		return
	}

	log.Info("menu created", "menu_id", item.ID.String(), "name", item.Name)
	api.RespondCreated(w, &item)
}

func (h *Handler) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	var update MenuItemUpdate
	if !h.decode(w, r, &update, log) {
		return
	}

	item, err := h.repo.Get(ctx, id)
	if err != nil && !errors.Is(err, api.ErrNotFound) {
		log.Error("error loading menu", "error", err, "menu_id", id.String())
		api.RespondError(w, http.StatusInternalServerError, "Could not update menu")
		return
	}
	if item == nil {
		api.RespondResult(w, false, "Menu not found")
		return
	}

	update.Apply(item)

	if errs := ValidateCreateMenuItem(item); len(errs) > 0 {
		api.RespondError(w, http.StatusBadRequest, errs[0].Message)
		return
	}

	if err := h.repo.Save(ctx, item); err != nil {
		log.Error("cannot update menu", "error", err, "menu_id", id.String())
		api.RespondError(w, http.StatusInternalServerError, "Could not update menu")
		return
	}

	api.RespondResultData(w, true, "Menu updated", item)
}

func (h *Handler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	item, err := h.repo.Get(ctx, id)
	if err != nil && !errors.Is(err, api.ErrNotFound) {
		log.Error("error loading menu", "error", err, "menu_id", id.String())
		api.RespondError(w, http.StatusInternalServerError, "Could not delete menu")
		return
	}
	if item == nil {
		api.RespondResult(w, false, "Menu not found")
		return
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		log.Error("cannot delete menu", "error", err, "menu_id", id.String())
		api.RespondError(w, http.StatusInternalServerError, "Could not delete menu")
		return
	}

	log.Info("menu deleted", "menu_id", id.String())
	api.RespondResultData(w, true, "Menu deleted", item)
}

func (h *Handler) parseIDParam(w http.ResponseWriter, r *http.Request, log logger.Logger) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		log.Debug("missing id parameter")
		api.RespondError(w, http.StatusBadRequest, "Missing id parameter")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		log.Debug("invalid id parameter", "id", idStr)
		api.RespondError(w, http.StatusBadRequest, "Invalid id parameter")
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, target interface{}, log logger.Logger) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("failed to read request body", "error", err)
		api.RespondError(w, http.StatusBadRequest, "Failed to read request body")
		return false
	}

	if err := json.Unmarshal(body, target); err != nil {
		log.Debug("failed to decode request body", "error", err)
		api.RespondError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return false
	}

	return true
}

func (h *Handler) log(r *http.Request) logger.Logger {
	return h.logger.With("request_id", middleware.GetReqID(r.Context()))
}
