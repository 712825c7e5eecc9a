package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

type VenueRepository interface {
	Create(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	FindAll(ctx context.Context) ([]domain.Venue, error)
	FindByID(ctx context.Context, id uint) (domain.Venue, error)
	Update(ctx context.Context, id uint, changes domain.VenueChanges) (domain.Venue, error)
	Delete(ctx context.Context, id uint) (domain.Venue, error)
}

type VenueService struct {
	repo VenueRepository
}

func NewVenueService(repo VenueRepository) *VenueService {
	return &VenueService{
		repo: repo,
	}
}

func (s *VenueService) CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	created, err := s.repo.Create(ctx, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *VenueService) GetVenues(ctx context.Context) ([]domain.Venue, error) {
	found, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return found, nil
}

func (s *VenueService) GetVenue(ctx context.Context, id uint) (domain.Venue, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return found, nil
}

func (s *VenueService) UpdateVenue(ctx context.Context, id uint, changes domain.VenueChanges) (domain.Venue, error) {
	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *VenueService) DeleteVenue(ctx context.Context, id uint) (domain.Venue, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}
