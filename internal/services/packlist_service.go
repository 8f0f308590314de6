package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"lunchbox-backend/internal/cache"
	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"
)

// PacklistService builds the kitchen view for a date: every enrolled
// child minus that day's skips, with per-cohort totals and allergen
// alerts from the published menus.
type PacklistService struct {
	childRepo     *repositories.ChildRepository
	selectionRepo *repositories.SelectionRepository
	menuRepo      *repositories.MenuRepository
}

func NewPacklistService(
	childRepo *repositories.ChildRepository,
	selectionRepo *repositories.SelectionRepository,
	menuRepo *repositories.MenuRepository,
) *PacklistService {
	return &PacklistService{
		childRepo:     childRepo,
		selectionRepo: selectionRepo,
		menuRepo:      menuRepo,
	}
}

// FilterSkipped returns the children still receiving a box on the date
func FilterSkipped(children []*models.Child, skipped map[int]bool) []models.Child {
	out := make([]models.Child, 0, len(children))
	for _, c := range children {
		if !skipped[c.ID] {
			out = append(out, *c)
		}
	}
	return out
}

// AllergenAlerts merges comma-joined allergen lists into a deduplicated
// slice, preserving first-appearance order
func AllergenAlerts(lists ...string) []string {
	seen := make(map[string]bool)
	var alerts []string
	for _, list := range lists {
		for _, tag := range strings.Split(list, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			alerts = append(alerts, tag)
		}
	}
	return alerts
}

// Build assembles the packlist for a date, cached briefly for repeated
// kitchen-screen polls
func (s *PacklistService) Build(ctx context.Context, date string) (*models.Packlist, error) {
	key := fmt.Sprintf("packlist:%s", date)
	if data, ok := cache.GetCached(ctx, key); ok {
		var p models.Packlist
		if err := json.Unmarshal(data, &p); err == nil {
			return &p, nil
		}
	}

	children, err := s.childRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	skipped, err := s.selectionRepo.SkippedChildIDs(ctx, date)
	if err != nil {
		return nil, err
	}

	packed := FilterSkipped(children, skipped)
	totals := make(map[string]int)
	for _, c := range packed {
		totals[c.Cohort]++
	}

	p := &models.Packlist{
		Date:         date,
		TotalBoxes:   len(packed),
		CohortTotals: totals,
		Children:     packed,
	}

	menus, err := s.menuRepo.ListRange(ctx, date, date)
	if err != nil {
		return nil, err
	}
	var allergenLists []string
	for _, m := range menus {
		if p.MenuTitle == "" {
			p.MenuTitle = m.Title
		}
		allergenLists = append(allergenLists, m.Allergens)
	}
	p.Alerts = AllergenAlerts(allergenLists...)

	if data, err := json.Marshal(p); err == nil {
		cache.SetCached(ctx, key, data, 2*time.Minute)
	}

	return p, nil
}
