package http

import (
	"lunchbox-backend/internal/handlers"
	"lunchbox-backend/internal/middleware"
	"lunchbox-backend/internal/ws"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	childHandler *handlers.ChildHandler,
	menuHandler *handlers.MenuHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	invoiceHandler *handlers.InvoiceHandler,
	selectionHandler *handlers.SelectionHandler,
	deliveryHandler *handlers.DeliveryHandler,
	feedbackHandler *handlers.FeedbackHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	packlistHandler *handlers.PacklistHandler,
	notifyHandler *handlers.NotifyHandler,
	razorpayHandler *handlers.RazorpayHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	hub *ws.Hub,
	apiKey string,
) *mux.Router {
	r := mux.NewRouter()

	// Dashboard authentication
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Storefront API routes, guarded by the shared X-Api-Key header
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.APIKey(apiKey))

	// Children
	api.HandleFunc("/children", childHandler.ListChildren).Methods("GET")
	api.HandleFunc("/children", childHandler.CreateChild).Methods("POST")

	// Menus
	api.HandleFunc("/menus", menuHandler.ListMenus).Methods("GET")

	// Subscriptions and billing
	api.HandleFunc("/subscriptions", subscriptionHandler.ListSubscriptions).Methods("GET")
	api.HandleFunc("/subscriptions", subscriptionHandler.ChangePlan).Methods("POST")
	api.HandleFunc("/invoices", invoiceHandler.ListInvoices).Methods("GET")
	api.HandleFunc("/invoices/{id}", invoiceHandler.GetInvoice).Methods("GET")
	api.HandleFunc("/invoices/{id}/pay", invoiceHandler.PayInvoice).Methods("POST")
	api.HandleFunc("/invoices/{id}/receipt.pdf", invoiceHandler.GetReceipt).Methods("GET")

	// Online payments (Razorpay checkout)
	api.HandleFunc("/payments/order", razorpayHandler.CreateOrder).Methods("POST")
	api.HandleFunc("/payments/verify", razorpayHandler.VerifyPayment).Methods("POST")

	// Skip-day selections
	api.HandleFunc("/selections", selectionHandler.ToggleSelection).Methods("POST")
	api.HandleFunc("/selections", selectionHandler.ListSelections).Methods("GET")

	// Deliveries
	api.HandleFunc("/deliveries", deliveryHandler.ListDeliveries).Methods("GET")
	api.HandleFunc("/deliveries/routes", deliveryHandler.ListRoutes).Methods("GET")
	api.HandleFunc("/deliveries/{id}/mark-delivered", deliveryHandler.MarkDelivered).Methods("POST")

	// Feedback
	api.HandleFunc("/feedback", feedbackHandler.CreateFeedback).Methods("POST")

	// Analytics
	api.HandleFunc("/analytics/summary", analyticsHandler.GetSummary).Methods("GET")

	// Landing page opt-ins
	api.HandleFunc("/notify/email", notifyHandler.NotifyEmail).Methods("POST")
	api.HandleFunc("/notify/whatsapp", notifyHandler.NotifyWhatsApp).Methods("POST")

	// Razorpay webhook authenticates by signature, not API key
	r.HandleFunc("/api/payments/webhook", razorpayHandler.HandleWebhook).Methods("POST")

	// Ops routes require a dashboard JWT
	opsAPI := r.PathPrefix("/ops").Subrouter()
	opsAPI.Use(authMiddleware.Authenticate)
	opsAPI.HandleFunc("/packlist", packlistHandler.GetPacklist).Methods("GET")
	opsAPI.HandleFunc("/packlist.csv", packlistHandler.GetPacklistCSV).Methods("GET")

	// Live delivery updates for dispatch boards
	r.HandleFunc("/ws/deliveries", hub.ServeWS)

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
