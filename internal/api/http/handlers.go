package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"food-delivery/internal/cart"
	"food-delivery/internal/domain"
	"food-delivery/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Delivery  service.FoodDeliveryInterface
	Analytics service.AnalyticsInterface
}

func NewHandler(delivery service.FoodDeliveryInterface, analytics service.AnalyticsInterface) *Handler {
	return &Handler{
		Delivery:  delivery,
		Analytics: analytics,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/foods", h.listFoods).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/items", h.updateCartItem).Methods("PUT")

	r.HandleFunc("/api/orders", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/receipt", h.getOrderReceipt).Methods("GET")

	r.HandleFunc("/api/analytics/top-customers", h.topCustomers).Methods("GET")
	r.HandleFunc("/api/analytics/orders-today", h.ordersToday).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "food-delivery",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	customer, token, err := h.Delivery.Authenticate(r.Context(), credentials)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":    token,
		"customer": customer,
	})
}

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Delivery.ListFoods(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.authorize(w, r)
	if !ok {
		return
	}

	current, err := h.Delivery.GetCart(r.Context(), customer.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, current)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var payload struct {
		FoodName string `json:"food_name"`
		Pieces   int    `json:"pieces"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.Delivery.UpdateCart(r.Context(), customer.ID, payload.FoodName, payload.Pieces)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrFoodNotFound), errors.Is(err, cart.ErrItemNotInCart):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, cart.ErrLowBalance):
			http.Error(w, err.Error(), http.StatusPaymentRequired)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.authorize(w, r)
	if !ok {
		return
	}

	order, err := h.Delivery.Checkout(r.Context(), customer.ID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrEmptyCart):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, cart.ErrLowBalance):
			http.Error(w, err.Error(), http.StatusPaymentRequired)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.authorize(w, r)
	if !ok {
		return
	}

	orders, err := h.Delivery.ListOrders(r.Context(), customer.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.authorize(w, r)
	if !ok {
		return
	}

	orderID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	order, err := h.Delivery.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if order.CustomerID != customer.ID {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderReceipt(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.authorize(w, r)
	if !ok {
		return
	}

	orderID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	receipt, err := h.Delivery.OrderReceipt(r.Context(), customer.ID, orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(receipt)
}

func (h *Handler) topCustomers(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	top, err := h.Analytics.TopCustomers(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func (h *Handler) ordersToday(w http.ResponseWriter, r *http.Request) {
	count, err := h.Analytics.OrdersToday()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":  time.Now().Format("2006-01-02"),
		"count": count,
	})
}

func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) (*domain.Customer, bool) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		http.Error(w, "Missing bearer token", http.StatusUnauthorized)
		return nil, false
	}

	customer, err := h.Delivery.CustomerFromToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "Invalid or expired session", http.StatusUnauthorized)
			return nil, false
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return customer, true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
