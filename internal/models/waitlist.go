package models

import "time"

// Waitlist opt-in channels from the landing page
const (
	OptInEmail    = "email"
	OptInWhatsApp = "whatsapp"
)

// WaitlistSignup is a landing-page notification opt-in (email address or
// WhatsApp number), stored until a provider integration picks it up.
type WaitlistSignup struct {
	ID        int       `json:"id"`
	Channel   string    `json:"channel"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
}

// NotifyEmailRequest is the email opt-in body
type NotifyEmailRequest struct {
	Email string `json:"email"`
}

// NotifyWhatsAppRequest is the WhatsApp opt-in body
type NotifyWhatsAppRequest struct {
	Phone string `json:"phone"`
}
