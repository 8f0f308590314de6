package services

import (
	"context"
	"errors"

	"lunchbox-backend/internal/cache"
	"lunchbox-backend/internal/metrics"
	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"
	"lunchbox-backend/internal/timeutil"
)

// ErrInvalidDate is returned for dates not in YYYY-MM-DD form
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// SelectionService owns the skip-day set. Both the calendar view and the
// single-day control go through Toggle, so they always agree on the same
// underlying set.
type SelectionService struct {
	selectionRepo *repositories.SelectionRepository
}

func NewSelectionService(selectionRepo *repositories.SelectionRepository) *SelectionService {
	return &SelectionService{selectionRepo: selectionRepo}
}

// Toggle flips the skip state for (childID, date) and returns the
// authoritative result, letting clients reconcile optimistic flips that
// lost a race or failed.
func (s *SelectionService) Toggle(ctx context.Context, childID int, date string) (*models.ToggleSelectionResponse, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	skipped, sel, err := s.selectionRepo.Toggle(ctx, childID, date)
	if err != nil {
		return nil, err
	}

	state := "restored"
	if skipped {
		state = "skipped"
	}
	metrics.SkipTogglesTotal.WithLabelValues(state).Inc()
	cache.InvalidateSelectionCaches(ctx)

	return &models.ToggleSelectionResponse{Skipped: skipped, Selection: sel}, nil
}

// ListByChild returns the child's full skip set
func (s *SelectionService) ListByChild(ctx context.Context, childID int) ([]*models.Selection, error) {
	return s.selectionRepo.ListByChild(ctx, childID)
}
