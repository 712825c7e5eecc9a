package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration domain.Registration) (domain.Registration, error)
	FindAll(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error)
	Delete(ctx context.Context, eventID, playerID uint) error
}

type RegistrationService struct {
	repo RegistrationRepository
}

func NewRegistrationService(repo RegistrationRepository) *RegistrationService {
	return &RegistrationService{
		repo: repo,
	}
}

func (s *RegistrationService) Register(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	created, err := s.repo.Create(ctx, registration)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *RegistrationService) GetRegistrations(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error) {
	found, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return found, nil
}

func (s *RegistrationService) Unregister(ctx context.Context, eventID, playerID uint) error {
	if err := s.repo.Delete(ctx, eventID, playerID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
