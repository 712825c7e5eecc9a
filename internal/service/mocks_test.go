package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

type mockCardRepository struct {
	mock.Mock
}

func (m *mockCardRepository) Create(ctx context.Context, card domain.Card) (domain.Card, error) {
	args := m.Called(ctx, card)
	return args.Get(0).(domain.Card), args.Error(1)
}

func (m *mockCardRepository) FindAll(ctx context.Context) ([]domain.Card, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *mockCardRepository) FindByID(ctx context.Context, id uint) (domain.Card, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Card), args.Error(1)
}

func (m *mockCardRepository) Update(ctx context.Context, id uint, changes domain.CardChanges) (domain.Card, error) {
	args := m.Called(ctx, id, changes)
	return args.Get(0).(domain.Card), args.Error(1)
}

func (m *mockCardRepository) Delete(ctx context.Context, id uint) (domain.Card, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Card), args.Error(1)
}

type mockDecklistRepository struct {
	mock.Mock
}

func (m *mockDecklistRepository) Create(ctx context.Context, decklist domain.Decklist) (domain.Decklist, error) {
	args := m.Called(ctx, decklist)
	return args.Get(0).(domain.Decklist), args.Error(1)
}

func (m *mockDecklistRepository) FindAll(ctx context.Context, filter domain.DecklistFilter) ([]domain.Decklist, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Decklist), args.Error(1)
}

func (m *mockDecklistRepository) Delete(ctx context.Context, deckID, cardID uint) error {
	return m.Called(ctx, deckID, cardID).Error(0)
}

type mockEventRepository struct {
	mock.Mock
}

func (m *mockEventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepository) FindAll(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventRepository) Delete(ctx context.Context, id uint) (domain.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Event), args.Error(1)
}

type mockRegistrationRepository struct {
	mock.Mock
}

func (m *mockRegistrationRepository) Create(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	args := m.Called(ctx, registration)
	return args.Get(0).(domain.Registration), args.Error(1)
}

func (m *mockRegistrationRepository) FindAll(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Registration), args.Error(1)
}

func (m *mockRegistrationRepository) Delete(ctx context.Context, eventID, playerID uint) error {
	return m.Called(ctx, eventID, playerID).Error(0)
}
