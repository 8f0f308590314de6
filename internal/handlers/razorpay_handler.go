package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"
	"lunchbox-backend/internal/services"
	"lunchbox-backend/pkg/utils"
)

type RazorpayHandler struct {
	Service *services.RazorpayService
}

func NewRazorpayHandler(service *services.RazorpayService) *RazorpayHandler {
	return &RazorpayHandler{Service: service}
}

// CreateOrder creates a Razorpay order for a DUE invoice
// POST /api/payments/order
func (h *RazorpayHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if !h.Service.IsEnabled() {
		utils.Error(w, http.StatusServiceUnavailable, "Online payments are not configured")
		return
	}

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.InvoiceID <= 0 {
		utils.Error(w, http.StatusBadRequest, "Invalid invoiceId")
		return
	}

	resp, err := h.Service.CreateOrder(r.Context(), req.InvoiceID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvoiceNotDue) {
			utils.Error(w, http.StatusUnprocessableEntity, "Invoice is not due")
			return
		}
		log.Printf("[Razorpay] CreateOrder error: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

// VerifyPayment verifies the checkout callback and settles the invoice
// POST /api/payments/verify
func (h *RazorpayHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		utils.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	invoice, err := h.Service.VerifyPayment(r.Context(), &req)
	if err != nil {
		log.Printf("[Razorpay] VerifyPayment error: %v", err)
		utils.Error(w, http.StatusBadRequest, "Payment verification failed")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"invoice": invoice,
	})
}

// HandleWebhook processes Razorpay webhook events
// POST /api/payments/webhook
func (h *RazorpayHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("[Razorpay] Failed to read webhook body: %v", err)
		utils.Error(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	signature := r.Header.Get("X-Razorpay-Signature")
	if !h.Service.VerifyWebhookSignature(body, signature) {
		log.Printf("[Razorpay] Invalid webhook signature")
		utils.Error(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("[Razorpay] Failed to parse webhook: %v", err)
		utils.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	event, _ := payload["event"].(string)
	payloadData, _ := payload["payload"].(map[string]interface{})

	log.Printf("[Razorpay] Received webhook: %s", event)

	if err := h.Service.ProcessWebhook(r.Context(), event, payloadData); err != nil {
		log.Printf("[Razorpay] Webhook processing error: %v", err)
		// Return 200 anyway to prevent retries for known errors
	}

	// Always return 200 to acknowledge receipt
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
