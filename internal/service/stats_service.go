package service

import (
	"github.com/parkgrid/citations-backend-go/internal/models"
	"github.com/parkgrid/citations-backend-go/internal/repository"
)

// StatsService reports aggregate statistics over stored citations.
type StatsService struct {
	repo *repository.CitationRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(repo *repository.CitationRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Summary returns totals and per-day/per-hour counts.
func (s *StatsService) Summary(years float64) (*models.SummaryResponse, error) {
	if years <= 0 {
		years = DefaultYearsSpan
	}
	summary, err := s.repo.Summary()
	if err != nil {
		return nil, err
	}
	summary.YearsSpan = years
	summary.PerDay = float64(summary.Total) / (DaysPerYear * years)
	return summary, nil
}
