package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"
	"lunchbox-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ErrReceiptNotPaid is returned when a receipt is requested for an
// invoice that has not been settled
var ErrReceiptNotPaid = errors.New("invoice is not paid")

// ReceiptService renders payment receipts for settled invoices and the
// billing CSV used by the nightly export
type ReceiptService struct {
	invoiceRepo      *repositories.InvoiceRepository
	subscriptionRepo *repositories.SubscriptionRepository
	childRepo        *repositories.ChildRepository
}

func NewReceiptService(
	invoiceRepo *repositories.InvoiceRepository,
	subscriptionRepo *repositories.SubscriptionRepository,
	childRepo *repositories.ChildRepository,
) *ReceiptService {
	return &ReceiptService{
		invoiceRepo:      invoiceRepo,
		subscriptionRepo: subscriptionRepo,
		childRepo:        childRepo,
	}
}

// Generate renders a receipt PDF for a PAID invoice
func (s *ReceiptService) Generate(ctx context.Context, invoiceID int) ([]byte, error) {
	inv, err := s.invoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status != models.InvoicePaid {
		return nil, ErrReceiptNotPaid
	}

	sub, err := s.subscriptionRepo.Get(ctx, inv.SubscriptionID)
	if err != nil {
		return nil, fmt.Errorf("subscription not found: %w", err)
	}
	child, err := s.childRepo.Get(ctx, sub.ChildID)
	if err != nil {
		return nil, fmt.Errorf("child not found: %w", err)
	}

	return s.renderReceipt(inv, sub, child)
}

func (s *ReceiptService) renderReceipt(inv *models.Invoice, sub *models.Subscription, child *models.Child) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "LunchBuddy - Payment Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Receipt Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, fmt.Sprintf("Receipt #%d", inv.ID), "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Child: %s", child.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Class: %s", child.ClassLabel), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Plan: %s", sub.PlanID), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Guardian: %s", child.GuardianID), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Billing Details
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Billing Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(50, 7, "Period Start", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Period End", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Method", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Paid On", "1", 1, "C", true, 0, "")

	paidOn := ""
	if inv.PaidAt != nil {
		paidOn = timeutil.ToIST(*inv.PaidAt).Format("02-Jan-2006")
	}
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(50, 6, inv.PeriodStart, "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, inv.PeriodEnd, "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 6, inv.Method, "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 6, paidOn, "1", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Amount
	pdf.SetFillColor(200, 255, 200)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, fmt.Sprintf("Amount Paid: Rs. %d", inv.Amount), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// InvoicesCSV generates a CSV of all invoices for the nightly export
func (s *ReceiptService) InvoicesCSV(ctx context.Context) ([]byte, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"#", "Subscription", "Period Start", "Period End", "Amount", "Status", "Method"})
	for _, inv := range invoices {
		w.Write([]string{
			fmt.Sprintf("%d", inv.ID),
			fmt.Sprintf("%d", inv.SubscriptionID),
			inv.PeriodStart,
			inv.PeriodEnd,
			fmt.Sprintf("%d", inv.Amount),
			inv.Status,
			inv.Method,
		})
	}

	w.Flush()
	return buf.Bytes(), nil
}

// PacklistCSV flattens a packlist into the kitchen export format
func PacklistCSV(p *models.Packlist) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Packlist", p.Date})
	w.Write([]string{"Menu", p.MenuTitle})
	w.Write([]string{"Total Boxes", fmt.Sprintf("%d", p.TotalBoxes)})
	w.Write([]string{"Alerts", strings.Join(p.Alerts, "; ")})
	w.Write([]string{""})

	w.Write([]string{"#", "Name", "Cohort", "Class", "Allergens"})
	for i, c := range p.Children {
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			c.Name,
			c.Cohort,
			c.ClassLabel,
			strings.Join(c.Allergens, "; "),
		})
	}

	w.Flush()
	return buf.Bytes(), nil
}
