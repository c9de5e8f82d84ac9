package service

import (
	"context"
	"fmt"
	"time"

	"github.com/templui/fittrack/internal/progress"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/validation"
)

const (
	DefaultProgressDays = 30
	MaxProgressDays     = 365
)

type ProgressResult struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
	Days int       `json:"days"`
	progress.Report
}

type ProgressService struct {
	logRepo     repository.WorkoutLogRepository
	defaultDays int
	now         func() time.Time
}

func NewProgressService(logRepo repository.WorkoutLogRepository, defaultDays int) *ProgressService {
	if defaultDays <= 0 {
		defaultDays = DefaultProgressDays
	}
	return &ProgressService{
		logRepo:     logRepo,
		defaultDays: defaultDays,
		now:         time.Now,
	}
}

// Progress analyses the logs dated within the last days days. days <= 0
// uses the configured default.
func (s *ProgressService) Progress(ctx context.Context, userID string, days int) (*ProgressResult, error) {
	if days <= 0 {
		days = s.defaultDays
	}
	if days > MaxProgressDays {
		return nil, validation.Newf("days", "must be at most %d", MaxProgressDays)
	}

	now := s.now()
	from := now.AddDate(0, 0, -days)

	logs, err := s.logRepo.Between(ctx, userID, from, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load workout logs: %w", err)
	}

	return &ProgressResult{
		From:   from,
		To:     now,
		Days:   days,
		Report: progress.Build(logs, now),
	}, nil
}
