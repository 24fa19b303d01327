package service

import (
	"context"
	"fmt"

	"datamarket/internal/repository"
)

const statusMessage = "AI + Blockchain Data Marketplace API is running"

// Status is the payload of the root health route.
type Status struct {
	Message string `json:"message"`
	Time    string `json:"time"`
}

// StatusService reports service and database liveness.
type StatusService interface {
	Status(ctx context.Context) (*Status, error)
}

type statusService struct {
	repo repository.HealthRepository
}

// NewStatusService creates a new status service.
func NewStatusService(repo repository.HealthRepository) StatusService {
	return &statusService{repo: repo}
}

func (s *statusService) Status(ctx context.Context) (*Status, error) {
	now, err := s.repo.ServerTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("query server time: %w", err)
	}
	return &Status{Message: statusMessage, Time: now}, nil
}
