package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"cafe-floor/kitchen-svc/internal/domain"
	"cafe-floor/kitchen-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type Handler struct {
	Store  service.StoreInterface
	Logger *slog.Logger
}

func NewHandler(store service.StoreInterface, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Store: store, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/kitchen/stations/{station}/queue", h.getQueue).Methods("GET")
}

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"service":   "kitchen-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getQueue(w http.ResponseWriter, r *http.Request) {
	station := domain.Station(mux.Vars(r)["station"])
	if !station.Valid() {
		http.Error(w, "Unknown station", http.StatusNotFound)
		return
	}

	queue, err := h.Store.Queue(r.Context(), station)
	if err != nil {
		h.Logger.Error("read station queue", "station", station, "error", err)
		http.Error(w, "Failed to read queue", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"station": station,
		"depth":   len(queue),
		"tickets": queue,
	})
}
