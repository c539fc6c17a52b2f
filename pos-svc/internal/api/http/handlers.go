package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"cafe-floor/pos-svc/internal/dashboard"
	"cafe-floor/pos-svc/internal/domain"
	"cafe-floor/pos-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Floor  service.FloorServiceInterface
	QR     service.QRGenerator
	Logger *slog.Logger
	Now    func() time.Time
}

func NewHandler(floor service.FloorServiceInterface, qr service.QRGenerator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Floor:  floor,
		QR:     qr,
		Logger: logger,
		Now:    time.Now,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/state", h.getState).Methods("GET")
	r.HandleFunc("/api/dashboard", h.getDashboard).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/items", h.addItems).Methods("POST")
	r.HandleFunc("/api/orders/{id}/fire", h.fireOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/payments", h.recordPayment).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/tickets/{id}/status", h.updateTicketStatus).Methods("PUT")

	r.HandleFunc("/api/inventory/{id}", h.adjustInventory).Methods("PATCH")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PATCH")
	r.HandleFunc("/api/tables/{id}/status", h.updateTableStatus).Methods("PUT")
}

type orderView struct {
	domain.Order
	Total   float64 `json:"total"`
	Balance float64 `json:"balance"`
}

func newOrderView(order domain.Order) orderView {
	return orderView{
		Order:   order,
		Total:   service.OrderTotal(order).InexactFloat64(),
		Balance: service.Balance(order).InexactFloat64(),
	}
}

type addItemsRequest struct {
	Items []domain.ItemRequest `json:"items"`
}

type fireRequest struct {
	Station domain.Station `json:"station"`
	ItemIDs []string       `json:"itemIds"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "pos-svc",
		"timestamp": h.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Floor.State())
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dashboard.Summarize(h.Floor.State(), h.Now()))
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(input.Items) == 0 {
		http.Error(w, "Order needs at least one item", http.StatusBadRequest)
		return
	}

	id, err := h.Floor.CreateOrder(input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	order, ok := h.Floor.Order(id)
	if !ok {
		writeJSON(w, http.StatusCreated, map[string]string{"id": id})
		return
	}
	writeJSON(w, http.StatusCreated, newOrderView(order))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.Floor.Order(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, newOrderView(order))
}

func (h *Handler) addItems(w http.ResponseWriter, r *http.Request) {
	var req addItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	added, err := h.Floor.AddItemsToOrder(mux.Vars(r)["id"], req.Items)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if added == nil {
		added = []domain.OrderItem{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": added})
}

// fireOrder accepts an empty body. Without itemIds the whole order is fired;
// ids that are not on the order are ignored.
func (h *Handler) fireOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req fireRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	if req.Station != "" && !req.Station.Valid() {
		http.Error(w, "Invalid station", http.StatusBadRequest)
		return
	}

	var items []domain.OrderItem
	if len(req.ItemIDs) > 0 {
		order, ok := h.Floor.Order(orderID)
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		wanted := make(map[string]bool, len(req.ItemIDs))
		for _, id := range req.ItemIDs {
			wanted[id] = true
		}
		items = []domain.OrderItem{}
		for _, item := range order.Items {
			if wanted[item.ID] {
				items = append(items, item)
			}
		}
	}

	ticket, ok := h.Floor.FireOrderToKitchen(orderID, req.Station, items)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Floor.UpdateOrderStatus(mux.Vars(r)["id"], domain.OrderStatus(req.Status)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	var payment domain.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Floor.RecordPayment(mux.Vars(r)["id"], payment); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	if _, ok := h.Floor.Order(orderID); !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	qrCode, err := h.QR.Generate(orderID)
	if err != nil {
		h.Logger.Error("generate bill qr code", "order_id", orderID, "error", err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) updateTicketStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Floor.UpdateTicketStatus(mux.Vars(r)["id"], domain.KotStatus(req.Status)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adjustInventory(w http.ResponseWriter, r *http.Request) {
	var update domain.InventoryUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	update.ID = mux.Vars(r)["id"]

	h.Floor.AdjustInventory(update)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var update domain.MenuItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if update.Price != nil && *update.Price < 0 {
		http.Error(w, "Price cannot be negative", http.StatusBadRequest)
		return
	}
	update.ID = mux.Vars(r)["id"]

	h.Floor.UpdateMenuItem(update)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateTableStatus(w http.ResponseWriter, r *http.Request) {
	var update domain.TableStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !update.Status.Valid() {
		http.Error(w, "Unknown table status", http.StatusBadRequest)
		return
	}
	update.ID = mux.Vars(r)["id"]

	h.Floor.UpdateTableStatus(update)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var transitionErr *service.TransitionError
	switch {
	case errors.As(err, &transitionErr):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrUnknownMenuItem),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidPayment),
		errors.Is(err, service.ErrInvalidTicketStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.Logger.Error("request failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
