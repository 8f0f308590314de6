package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"
	"lunchbox-backend/internal/services"
	"lunchbox-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type InvoiceHandler struct {
	Service  *services.InvoiceService
	Receipts *services.ReceiptService
}

func NewInvoiceHandler(s *services.InvoiceService, receipts *services.ReceiptService) *InvoiceHandler {
	return &InvoiceHandler{Service: s, Receipts: receipts}
}

// ListInvoices returns invoices for a subscription, newest first
// GET /api/invoices?subscriptionId=N
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	subscriptionID, err := strconv.Atoi(r.URL.Query().Get("subscriptionId"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid subscriptionId")
		return
	}

	invoices, err := h.Service.ListBySubscription(r.Context(), subscriptionID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list invoices")
		return
	}
	if invoices == nil {
		invoices = []*models.Invoice{}
	}

	utils.JSON(w, http.StatusOK, invoices)
}

// GetInvoice retrieves an invoice by ID
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	invoice, err := h.Service.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Invoice not found")
		return
	}

	utils.JSON(w, http.StatusOK, invoice)
}

// PayInvoice settles a DUE invoice. A non-DUE invoice is a business
// rejection (422), not a transport failure; clients keep their state.
// POST /api/invoices/{id}/pay
func (h *InvoiceHandler) PayInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	var req models.PayInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	invoice, err := h.Service.Pay(r.Context(), id, req.Method)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPaymentMethod):
			utils.Error(w, http.StatusBadRequest, "Invalid payment method")
		case errors.Is(err, repositories.ErrInvoiceNotDue):
			utils.Error(w, http.StatusUnprocessableEntity, "Invoice is not due")
		default:
			utils.Error(w, http.StatusInternalServerError, "Failed to pay invoice")
		}
		return
	}

	utils.JSON(w, http.StatusOK, invoice)
}

// GetReceipt streams the receipt PDF for a PAID invoice
// GET /api/invoices/{id}/receipt.pdf
func (h *InvoiceHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	pdf, err := h.Receipts.Generate(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrReceiptNotPaid) {
			utils.Error(w, http.StatusUnprocessableEntity, "Invoice is not paid")
			return
		}
		utils.Error(w, http.StatusNotFound, "Invoice not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt_%d.pdf"`, id))
	w.Write(pdf)
}
