package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

type OrganiserRepository interface {
	Create(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error)
	FindAll(ctx context.Context) ([]domain.Organiser, error)
	FindByID(ctx context.Context, id uint) (domain.Organiser, error)
	Update(ctx context.Context, id uint, changes domain.OrganiserChanges) (domain.Organiser, error)
	Delete(ctx context.Context, id uint) (domain.Organiser, error)
}

type OrganiserService struct {
	repo OrganiserRepository
}

func NewOrganiserService(repo OrganiserRepository) *OrganiserService {
	return &OrganiserService{
		repo: repo,
	}
}

func (s *OrganiserService) CreateOrganiser(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error) {
	created, err := s.repo.Create(ctx, organiser)
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *OrganiserService) GetOrganisers(ctx context.Context) ([]domain.Organiser, error) {
	found, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return found, nil
}

func (s *OrganiserService) GetOrganiser(ctx context.Context, id uint) (domain.Organiser, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return found, nil
}

func (s *OrganiserService) UpdateOrganiser(ctx context.Context, id uint, changes domain.OrganiserChanges) (domain.Organiser, error) {
	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *OrganiserService) DeleteOrganiser(ctx context.Context, id uint) (domain.Organiser, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}
