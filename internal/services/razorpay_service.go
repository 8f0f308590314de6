package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayService runs the hosted-checkout flow for DUE invoices: order
// creation, callback signature verification, and webhook capture. The
// direct /pay endpoint stays available for recorded offline payments.
type RazorpayService struct {
	transactionRepo *repositories.OnlineTransactionRepository
	invoiceService  *InvoiceService
	keyID           string
	keySecret       string
	webhookSecret   string
}

func NewRazorpayService(
	keyID, keySecret, webhookSecret string,
	transactionRepo *repositories.OnlineTransactionRepository,
	invoiceService *InvoiceService,
) *RazorpayService {
	return &RazorpayService{
		transactionRepo: transactionRepo,
		invoiceService:  invoiceService,
		keyID:           keyID,
		keySecret:       keySecret,
		webhookSecret:   webhookSecret,
	}
}

// IsEnabled reports whether gateway credentials are configured
func (s *RazorpayService) IsEnabled() bool {
	return s.keyID != "" && s.keySecret != ""
}

func (s *RazorpayService) client() *razorpay.Client {
	if !s.IsEnabled() {
		return nil
	}
	return razorpay.NewClient(s.keyID, s.keySecret)
}

// CreateOrder creates a gateway order for a DUE invoice and stores the
// transaction record
func (s *RazorpayService) CreateOrder(ctx context.Context, invoiceID int) (*models.CreateOrderResponse, error) {
	client := s.client()
	if client == nil {
		return nil, fmt.Errorf("razorpay client not configured")
	}

	inv, err := s.invoiceService.Get(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoice not found: %w", err)
	}
	if inv.Status != models.InvoiceDue {
		return nil, repositories.ErrInvoiceNotDue
	}

	// Razorpay amounts are in paise
	amountPaise := inv.Amount * 100

	orderData := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  fmt.Sprintf("inv_%d", inv.ID),
		"notes": map[string]interface{}{
			"invoice_id":      inv.ID,
			"subscription_id": inv.SubscriptionID,
		},
	}

	order, err := client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}
	orderID := order["id"].(string)

	tx := &models.OnlineTransaction{
		RazorpayOrderID: orderID,
		InvoiceID:       inv.ID,
		Amount:          inv.Amount,
	}
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to store transaction: %w", err)
	}

	return &models.CreateOrderResponse{
		OrderID:  orderID,
		Amount:   amountPaise,
		Currency: "INR",
		KeyID:    s.keyID,
	}, nil
}

// VerifyPayment checks the checkout callback signature and settles the
// invoice. Re-verifying an already-captured order returns the settled
// invoice without touching it again.
func (s *RazorpayService) VerifyPayment(ctx context.Context, req *models.VerifyPaymentRequest) (*models.Invoice, error) {
	if !s.verifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		_ = s.transactionRepo.UpdatePaymentFailed(ctx, req.RazorpayOrderID, "Invalid signature")
		return nil, fmt.Errorf("invalid payment signature")
	}

	tx, err := s.transactionRepo.GetByOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		return nil, fmt.Errorf("transaction not found: %w", err)
	}

	if tx.Status == models.OnlineTxStatusSuccess {
		return s.invoiceService.Get(ctx, tx.InvoiceID)
	}

	if err := s.transactionRepo.UpdatePaymentSuccess(ctx, req.RazorpayOrderID, req.RazorpayPaymentID); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return s.settleInvoice(ctx, tx.InvoiceID, req.RazorpayPaymentID)
}

// settleInvoice marks the invoice PAID with the method reported by the
// gateway. An invoice that already settled (webhook raced the callback)
// is returned as-is.
func (s *RazorpayService) settleInvoice(ctx context.Context, invoiceID int, paymentID string) (*models.Invoice, error) {
	method := s.paymentMethod(paymentID)

	inv, err := s.invoiceService.Pay(ctx, invoiceID, method)
	if err == nil {
		return inv, nil
	}
	if errors.Is(err, repositories.ErrInvoiceNotDue) {
		return s.invoiceService.Get(ctx, invoiceID)
	}
	return nil, err
}

// paymentMethod maps the gateway's payment method onto the invoice
// method enum; anything that is not UPI settles as CARD
func (s *RazorpayService) paymentMethod(paymentID string) string {
	client := s.client()
	if client == nil || paymentID == "" {
		return models.PaymentMethodCard
	}

	payment, err := client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		log.Printf("[Razorpay] Failed to fetch payment details: %v", err)
		return models.PaymentMethodCard
	}
	if m, ok := payment["method"].(string); ok && m == "upi" {
		return models.PaymentMethodUPI
	}
	return models.PaymentMethodCard
}

// verifySignature verifies the Razorpay payment signature
func (s *RazorpayService) verifySignature(orderID, paymentID, signature string) bool {
	if s.keySecret == "" {
		return false
	}
	data := orderID + "|" + paymentID
	h := hmac.New(sha256.New, []byte(s.keySecret))
	h.Write([]byte(data))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature verifies the webhook signature
func (s *RazorpayService) VerifyWebhookSignature(body []byte, signature string) bool {
	if s.webhookSecret == "" {
		return true // Skip verification if not configured
	}

	h := hmac.New(sha256.New, []byte(s.webhookSecret))
	h.Write(body)
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ProcessWebhook processes Razorpay webhook events
func (s *RazorpayService) ProcessWebhook(ctx context.Context, event string, paymentData map[string]interface{}) error {
	switch event {
	case "payment.captured":
		return s.handlePaymentCaptured(ctx, paymentData)
	case "payment.failed":
		return s.handlePaymentFailed(ctx, paymentData)
	default:
		log.Printf("[Razorpay] Unhandled webhook event: %s", event)
		return nil
	}
}

func webhookEntity(paymentData map[string]interface{}) map[string]interface{} {
	paymentEntity, ok := paymentData["payment"].(map[string]interface{})
	if !ok {
		paymentEntity = paymentData
	}
	entity, ok := paymentEntity["entity"].(map[string]interface{})
	if !ok {
		entity = paymentEntity
	}
	return entity
}

func (s *RazorpayService) handlePaymentCaptured(ctx context.Context, paymentData map[string]interface{}) error {
	entity := webhookEntity(paymentData)
	orderID, _ := entity["order_id"].(string)
	paymentID, _ := entity["id"].(string)

	if orderID == "" {
		return fmt.Errorf("missing order_id in webhook")
	}

	// Webhooks retry; skip orders the callback already settled
	processed, _ := s.transactionRepo.IsPaymentProcessed(ctx, orderID)
	if processed {
		log.Printf("[Razorpay] Payment already processed: %s", orderID)
		return nil
	}

	tx, err := s.transactionRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("transaction not found: %w", err)
	}

	if err := s.transactionRepo.UpdatePaymentSuccess(ctx, orderID, paymentID); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	_, err = s.settleInvoice(ctx, tx.InvoiceID, paymentID)
	return err
}

func (s *RazorpayService) handlePaymentFailed(ctx context.Context, paymentData map[string]interface{}) error {
	entity := webhookEntity(paymentData)
	orderID, _ := entity["order_id"].(string)

	reason := "Payment failed"
	if desc, ok := entity["error_description"].(string); ok {
		reason = desc
	}

	if orderID != "" {
		return s.transactionRepo.UpdatePaymentFailed(ctx, orderID, reason)
	}
	return nil
}
