package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

func TestCardService_CreateCard(t *testing.T) {
	ctx := context.Background()
	card := domain.Card{Number: "BT1-010", Name: "Agumon", Type: domain.CardTypeDigimon, Rarity: domain.CardRarityCommon}

	repo := new(mockCardRepository)
	created := card
	created.ID = 1
	repo.On("Create", ctx, card).Return(created, nil)

	got, err := NewCardService(repo).CreateCard(ctx, card)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	repo.AssertExpectations(t)
}

func TestCardService_NotFoundIsKept(t *testing.T) {
	ctx := context.Background()
	name := "Gabumon"
	changes := domain.CardChanges{Name: &name}

	repo := new(mockCardRepository)
	repo.On("FindByID", ctx, uint(7)).Return(domain.Card{}, fmt.Errorf("r.dao.FindByID -> %w", ErrNotFound))
	repo.On("Update", ctx, uint(7), changes).Return(domain.Card{}, ErrNotFound)
	repo.On("Delete", ctx, uint(7)).Return(domain.Card{}, ErrNotFound)
	svc := NewCardService(repo)

	_, err := svc.GetCard(ctx, 7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "s.repo.FindByID -> ")

	_, err = svc.UpdateCard(ctx, 7, changes)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.DeleteCard(ctx, 7)
	assert.ErrorIs(t, err, ErrNotFound)

	repo.AssertExpectations(t)
}

func TestCardService_GetCards(t *testing.T) {
	ctx := context.Background()
	errDB := errors.New("connection reset")

	repo := new(mockCardRepository)
	repo.On("FindAll", ctx).Return([]domain.Card(nil), errDB).Once()
	repo.On("FindAll", ctx).Return([]domain.Card{{ID: 1}}, nil).Once()
	svc := NewCardService(repo)

	_, err := svc.GetCards(ctx)
	assert.ErrorIs(t, err, errDB)

	got, err := svc.GetCards(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDecklistService_AddCard(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		quantity int
		want     int
	}{
		{name: "quantity left out", quantity: 0, want: defaultCardQuantity},
		{name: "quantity given", quantity: 4, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockDecklistRepository)
			repo.On("Create", ctx, mock.MatchedBy(func(d domain.Decklist) bool {
				return d.DeckID == 1 && d.CardID == 2 && d.Quantity == tt.want
			})).Return(domain.Decklist{DeckID: 1, CardID: 2, Quantity: tt.want}, nil)

			got, err := NewDecklistService(repo).AddCard(ctx, domain.Decklist{DeckID: 1, CardID: 2, Quantity: tt.quantity})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Quantity)
			repo.AssertExpectations(t)
		})
	}
}

func TestDecklistService_RemoveCard(t *testing.T) {
	ctx := context.Background()

	repo := new(mockDecklistRepository)
	repo.On("Delete", ctx, uint(1), uint(2)).Return(nil)
	repo.On("Delete", ctx, uint(1), uint(3)).Return(ErrNotFound)
	svc := NewDecklistService(repo)

	assert.NoError(t, svc.RemoveCard(ctx, 1, 2))
	assert.ErrorIs(t, svc.RemoveCard(ctx, 1, 3), ErrNotFound)
}

func TestDecklistService_GetDecklists(t *testing.T) {
	ctx := context.Background()
	deckID := uint(1)
	filter := domain.DecklistFilter{DeckID: &deckID}

	repo := new(mockDecklistRepository)
	repo.On("FindAll", ctx, filter).Return([]domain.Decklist{{DeckID: 1, CardID: 2, Quantity: 4}}, nil)

	got, err := NewDecklistService(repo).GetDecklists(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	repo.AssertExpectations(t)
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		status domain.EventStatus
		want   domain.EventStatus
	}{
		{name: "status left out", status: "", want: domain.EventStatusPlanned},
		{name: "status given", status: domain.EventStatusRunning, want: domain.EventStatusRunning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := domain.Event{Name: "Store Championship", Status: tt.status}
			stored := in
			stored.Status = tt.want

			repo := new(mockEventRepository)
			repo.On("Create", ctx, stored).Return(stored, nil)

			got, err := NewEventService(repo).CreateEvent(ctx, in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
			repo.AssertExpectations(t)
		})
	}
}

func TestEventService_DeleteEvent(t *testing.T) {
	ctx := context.Background()

	repo := new(mockEventRepository)
	repo.On("Delete", ctx, uint(3)).Return(domain.Event{ID: 3, Name: "Regionals"}, nil)
	repo.On("Delete", ctx, uint(4)).Return(domain.Event{}, ErrNotFound)
	svc := NewEventService(repo)

	got, err := svc.DeleteEvent(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Regionals", got.Name)

	_, err = svc.DeleteEvent(ctx, 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistrationService(t *testing.T) {
	ctx := context.Background()
	reg := domain.Registration{EventID: 1, PlayerID: 2}

	repo := new(mockRegistrationRepository)
	repo.On("Create", ctx, reg).Return(reg, nil)
	repo.On("Delete", ctx, uint(1), uint(2)).Return(nil)
	repo.On("Delete", ctx, uint(1), uint(9)).Return(fmt.Errorf("r.dao.Delete -> %w", ErrNotFound))
	svc := NewRegistrationService(repo)

	got, err := svc.Register(ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, reg, got)

	assert.NoError(t, svc.Unregister(ctx, 1, 2))

	err = svc.Unregister(ctx, 1, 9)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "s.repo.Delete -> r.dao.Delete -> record not found", err.Error())
}
