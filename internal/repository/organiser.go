package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
	"github.com/vietanh2810/tcg-tournament-api/internal/repository/dao"
)

type OrganiserDAO interface {
	Insert(ctx context.Context, organiser dao.Organiser) (dao.Organiser, error)
	FindAll(ctx context.Context) ([]dao.Organiser, error)
	FindByID(ctx context.Context, id uint) (dao.Organiser, error)
	Update(ctx context.Context, id uint, columns map[string]interface{}) (dao.Organiser, error)
	Delete(ctx context.Context, id uint) (dao.Organiser, error)
}

type OrganiserRepository struct {
	dao OrganiserDAO
}

func NewOrganiserRepository(dao OrganiserDAO) *OrganiserRepository {
	return &OrganiserRepository{
		dao: dao,
	}
}

func (r *OrganiserRepository) Create(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error) {
	created, err := r.dao.Insert(ctx, dao.Organiser{
		Name:   organiser.Name,
		Email:  organiser.Email,
		Number: organiser.Number,
	})
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *OrganiserRepository) FindAll(ctx context.Context) ([]domain.Organiser, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	organisers := make([]domain.Organiser, 0, len(found))
	for _, o := range found {
		organisers = append(organisers, r.daoToDomain(o))
	}

	return organisers, nil
}

func (r *OrganiserRepository) FindByID(ctx context.Context, id uint) (domain.Organiser, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OrganiserRepository) Update(ctx context.Context, id uint, changes domain.OrganiserChanges) (domain.Organiser, error) {
	columns := map[string]interface{}{}
	if changes.Name != nil {
		columns["organiser_name"] = *changes.Name
	}
	if changes.Email != nil {
		columns["organiser_email"] = *changes.Email
	}
	if changes.Number != nil {
		columns["organiser_number"] = *changes.Number
	}

	updated, err := r.dao.Update(ctx, id, columns)
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *OrganiserRepository) Delete(ctx context.Context, id uint) (domain.Organiser, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *OrganiserRepository) daoToDomain(o dao.Organiser) domain.Organiser {
	return domain.Organiser{
		ID:     o.ID,
		Name:   o.Name,
		Email:  o.Email,
		Number: o.Number,
	}
}

func organiserRef(o *dao.Organiser) *domain.OrganiserRef {
	if o == nil {
		return nil
	}

	return &domain.OrganiserRef{Name: o.Name}
}
