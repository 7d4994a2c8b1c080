package order

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/api"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/event"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/logger"
)

const MaxBodyBytes = 1 << 20

type Handler struct {
	logger    logger.Logger
	repo      Repo
	publisher event.Publisher
}

func NewHandler(repo Repo, publisher event.Publisher, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Handler{
		logger:    log,
		repo:      repo,
		publisher: publisher,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/", h.CreateOrder)
		r.Put("/", h.UpdateOrderReadiness)
		r.Patch("/{orderID}/items/{itemID}", h.UpdateItemStatus)
	})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)
	ctx := r.Context()

	orders, err := h.repo.List(ctx)
	if err != nil {
		log.Error("error retrieving orders", "error", err)
		api.RespondError(w, http.StatusInternalServerError, "Could not retrieve orders")
		return
	}
	if orders == nil {
		orders = []*Order{}
	}

	api.RespondData(w, "Success", orders)
}

type OrderCreateRequest struct {
	Cart []CartItem `json:"cart"`
	User *User      `json:"user"`
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)
	ctx := r.Context()

	var req OrderCreateRequest
	if !h.decode(w, r, &req, log) {
		return
	}

	if len(req.Cart) == 0 || req.User == nil || req.User.Username == "" {
		log.Debug("missing cart or user in create order request")
		api.RespondError(w, http.StatusBadRequest, "Cart and user data are required")
		return
	}

	for i := range req.Cart {
		if req.Cart[i].Quantity <= 0 {
			api.RespondError(w, http.StatusBadRequest, "Item quantity must be positive")
			return
		}
	}

	o := NewOrder(*req.User, req.Cart)
	o.BeforeCreate()

	if err := h.repo.Create(ctx, o); err != nil {
		log.Error("cannot create order", "error", err)
		api.RespondError(w, http.StatusInternalServerError, "Could not create order")
		return
	}

	h.publishOrderCreated(r, o)

	w.Header().Set("Location", "/api/orders/"+o.ID.String())
	api.RespondCreated(w, map[string]interface{}{
		"id":   o.ID,
		"cart": o.Cart,
		"user": o.User,
	})
}

type ReadinessUpdateRequest struct {
	DocID   string `json:"docId"`
	IsReady *bool  `json:"isReady"`
}

func (h *Handler) UpdateOrderReadiness(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)
	ctx := r.Context()

	var req ReadinessUpdateRequest
	if !h.decode(w, r, &req, log) {
		return
	}

	// Both fields must be present before the store is touched.
	if req.DocID == "" || req.IsReady == nil {
		log.Debug("missing docId or isReady in readiness update")
		api.RespondError(w, http.StatusBadRequest, "docId and isReady are required")
		return
	}

	id, err := uuid.Parse(req.DocID)
	if err != nil {
		log.Debug("invalid docId", "docId", req.DocID)
		api.RespondError(w, http.StatusBadRequest, "Invalid docId")
		return
	}

	if err := h.repo.SetReadiness(ctx, id, *req.IsReady); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.RespondResult(w, false, "Order not found")
			return
		}
		log.Error("cannot update order readiness", "error", err, "order_id", id.String())
		api.RespondError(w, http.StatusInternalServerError, "Could not update order")
		return
	}

	api.RespondResult(w, true, "Order updated")
}

type ItemStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateItemStatus(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)
	ctx := r.Context()

	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		api.RespondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}
	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		api.RespondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req ItemStatusRequest
	if !h.decode(w, r, &req, log) {
		return
	}
	if !ValidStatus(req.Status) {
		log.Debug("invalid status", "status", req.Status)
		api.RespondError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	o, err := h.repo.Get(ctx, orderID)
	if err != nil || o == nil {
		log.Error("order not found", "error", err, "order_id", orderID.String())
		api.RespondError(w, http.StatusNotFound, "Order not found")
		return
	}

	item := o.Item(itemID)
	if item == nil {
		api.RespondError(w, http.StatusNotFound, "Item not found")
		return
	}

	previous := item.Status
	if err := item.AdvanceTo(req.Status); err != nil {
		log.Debug("rejected status transition", "from", previous, "to", req.Status)
		api.RespondError(w, http.StatusConflict, err.Error())
		return
	}

	if err := h.repo.SetItemStatus(ctx, orderID, itemID, item.Status); err != nil {
		log.Error("cannot update item status", "error", err, "item_id", itemID.String())
		api.RespondError(w, http.StatusInternalServerError, "Could not update item status")
		return
	}

	// Keep the coarse order flag in step with the derived status so
	// older readers of is_ready see a consistent value.
	if o.Completed() && !o.IsReady {
		if err := h.repo.SetReadiness(ctx, orderID, true); err != nil {
			log.Error("cannot sync order readiness", "error", err, "order_id", orderID.String())
		}
	}

	h.publishItemStatusChanged(r, o, item, previous)

	log.Info("order item status updated", "order_id", orderID.String(), "item_id", itemID.String(), "status", item.Status)
	api.RespondResultData(w, true, "Item updated", item)
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

func (h *Handler) publishOrderCreated(r *http.Request, o *Order) {
	if h.publisher == nil {
		return
	}
	for i := range o.Cart {
		evt := event.OrderItemStatusEvent{
			EventType:  event.EventOrderCreated,
			OccurredAt: time.Now().UTC(),
			OrderID:    o.ID.String(),
			ItemID:     o.Cart[i].ID.String(),
			Status:     o.Cart[i].Status,
		}
		h.publish(r, evt)
	}
}

func (h *Handler) publishItemStatusChanged(r *http.Request, o *Order, item *CartItem, previous string) {
	if h.publisher == nil {
		return
	}
	evt := event.OrderItemStatusEvent{
		EventType:      event.EventOrderItemStatusChanged,
		OccurredAt:     time.Now().UTC(),
		OrderID:        o.ID.String(),
		ItemID:         item.ID.String(),
		Status:         item.Status,
		PreviousStatus: previous,
	}
	h.publish(r, evt)
}

func (h *Handler) publish(r *http.Request, evt event.OrderItemStatusEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("cannot marshal order item event", "error", err)
		return
	}
	if err := h.publisher.Publish(r.Context(), event.OrderItemsTopic, payload); err != nil {
		h.logger.Error("cannot publish order item event", "error", err, "event_type", evt.EventType)
	}
}

func (h *Handler) log(r *http.Request) logger.Logger {
	return h.logger.With("request_id", middleware.GetReqID(r.Context()))
}
