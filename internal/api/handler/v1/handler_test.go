package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
	"github.com/vietanh2810/tcg-tournament-api/internal/service"
)

type mockCardService struct {
	mock.Mock
}

func (m *mockCardService) CreateCard(ctx context.Context, card domain.Card) (domain.Card, error) {
	args := m.Called(card)
	return args.Get(0).(domain.Card), args.Error(1)
}

func (m *mockCardService) GetCards(ctx context.Context) ([]domain.Card, error) {
	args := m.Called()
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *mockCardService) GetCard(ctx context.Context, id uint) (domain.Card, error) {
	args := m.Called(id)
	return args.Get(0).(domain.Card), args.Error(1)
}

func (m *mockCardService) UpdateCard(ctx context.Context, id uint, changes domain.CardChanges) (domain.Card, error) {
	args := m.Called(id, changes)
	return args.Get(0).(domain.Card), args.Error(1)
}

func (m *mockCardService) DeleteCard(ctx context.Context, id uint) (domain.Card, error) {
	args := m.Called(id)
	return args.Get(0).(domain.Card), args.Error(1)
}

type mockDecklistService struct {
	mock.Mock
}

func (m *mockDecklistService) AddCard(ctx context.Context, decklist domain.Decklist) (domain.Decklist, error) {
	args := m.Called(decklist)
	return args.Get(0).(domain.Decklist), args.Error(1)
}

func (m *mockDecklistService) GetDecklists(ctx context.Context, filter domain.DecklistFilter) ([]domain.Decklist, error) {
	args := m.Called(filter)
	return args.Get(0).([]domain.Decklist), args.Error(1)
}

func (m *mockDecklistService) RemoveCard(ctx context.Context, deckID, cardID uint) error {
	return m.Called(deckID, cardID).Error(0)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

var agumon = domain.Card{
	ID:     1,
	Number: "BT1-010",
	Name:   "Agumon",
	Type:   domain.CardTypeDigimon,
	Rarity: domain.CardRarityCommon,
}

func newCardRouter(svc CardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewCardHandler(svc)
	r.POST("/cards/", h.HandleCreateCard)
	r.GET("/cards/", h.HandleGetCards)
	r.GET("/cards/:cardID", h.HandleGetCard)
	r.PATCH("/cards/:cardID", h.HandleUpdateCard)
	r.DELETE("/cards/:cardID", h.HandleDeleteCard)
	r.NoRoute(HandleNoRoute)

	return r
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

func TestCardHandler_HandleCreateCard(t *testing.T) {
	svc := new(mockCardService)
	in := agumon
	in.ID = 0
	svc.On("CreateCard", in).Return(agumon, nil)

	w := serve(newCardRouter(svc), http.MethodPost, "/cards/",
		`{"card_number":"BT1-010","card_name":"Agumon","card_type":"Digimon","card_rarity":"Common"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"card_id":1,"card_number":"BT1-010","card_name":"Agumon","card_type":"Digimon","card_rarity":"Common"}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestCardHandler_HandleCreateCard_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "malformed json",
			body:       `{"card_number":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "body is not an object",
			body:       `["BT1-010"]`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrong field type",
			body:       `{"card_number":10}`,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Validation failed.",
		},
		{
			name:       "validation",
			body:       `{"card_number":" BT1-010","card_name":"Agumon","card_type":"Digimon","card_rarity":"Mythic"}`,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Validation failed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockCardService)

			w := serve(newCardRouter(svc), http.MethodPost, "/cards/", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeBody(t, w)["message"])
			}
			svc.AssertNotCalled(t, "CreateCard", mock.Anything)
		})
	}
}

func TestCardHandler_HandleCreateCard_ValidationErrors(t *testing.T) {
	w := serve(newCardRouter(new(mockCardService)), http.MethodPost, "/cards/",
		`{"card_number":" BT1-010","card_name":"Agumon","card_type":"Digimon","card_rarity":"Mythic"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{
		"message": "Validation failed.",
		"errors": {
			"card_number": "Card number cannot start with a blank.",
			"card_rarity": "Only valid card rarities are allowed. Common, Uncommon, Rare, Super Rare, or Secret Rare."
		}
	}`, w.Body.String())
}

func TestCardHandler_HandleCreateCard_FieldTypeErrors(t *testing.T) {
	w := serve(newCardRouter(new(mockCardService)), http.MethodPost, "/cards/",
		`{"card_number":"BT1-010","card_name":5,"card_type":"Digimon","card_rarity":"Common"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{
		"message": "Validation failed.",
		"errors": {"card_name": "Not a valid string."}
	}`, w.Body.String())
}

func TestCardHandler_HandleCreateCard_Duplicate(t *testing.T) {
	svc := new(mockCardService)
	svc.On("CreateCard", mock.Anything).Return(domain.Card{}, fmt.Errorf("s.repo.Create -> %w", &pgconn.PgError{
		Code:   pgerrcode.UniqueViolation,
		Detail: "Key (card_number)=(BT1-010) already exists.",
	}))

	w := serve(newCardRouter(svc), http.MethodPost, "/cards/",
		`{"card_number":"BT1-010","card_name":"Agumon","card_type":"Digimon","card_rarity":"Common"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"Key (card_number)=(BT1-010) already exists."}`, w.Body.String())
}

func TestCardHandler_HandleGetCards(t *testing.T) {
	svc := new(mockCardService)
	svc.On("GetCards").Return([]domain.Card{}, nil).Once()
	svc.On("GetCards").Return([]domain.Card{agumon}, nil).Once()
	r := newCardRouter(svc)

	w := serve(r, http.MethodGet, "/cards/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"No cards found in this database. Add a card to get started."}`, w.Body.String())

	w = serve(r, http.MethodGet, "/cards/", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var cards []domain.Card
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	assert.Equal(t, []domain.Card{agumon}, cards)
}

func TestCardHandler_HandleGetCards_ServerError(t *testing.T) {
	svc := new(mockCardService)
	svc.On("GetCards").Return([]domain.Card(nil), errors.New("connection refused"))

	w := serve(newCardRouter(svc), http.MethodGet, "/cards/", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Server error occured. Please contact the site administration."}`, w.Body.String())
}

func TestCardHandler_HandleGetCard(t *testing.T) {
	svc := new(mockCardService)
	svc.On("GetCard", uint(1)).Return(agumon, nil)
	svc.On("GetCard", uint(7)).Return(domain.Card{}, fmt.Errorf("s.repo.FindByID -> %w", service.ErrNotFound))
	r := newCardRouter(svc)

	w := serve(r, http.MethodGet, "/cards/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/cards/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Card with id 7 does not exist"}`, w.Body.String())

	for _, id := range []string{"abc", "-1", "4294967296"} {
		w = serve(r, http.MethodGet, "/cards/"+id, "")
		assert.Equal(t, http.StatusNotFound, w.Code, id)
		assert.JSONEq(t, `{"message":"Requested resource not found/ does not exist"}`, w.Body.String(), id)
	}
}

func TestCardHandler_HandleUpdateCard(t *testing.T) {
	name := "Agumon X"
	updated := agumon
	updated.Name = name

	svc := new(mockCardService)
	svc.On("UpdateCard", uint(1), domain.CardChanges{Name: &name}).Return(updated, nil)
	r := newCardRouter(svc)

	w := serve(r, http.MethodPatch, "/cards/1", `{"card_name":"Agumon X"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Agumon X", decodeBody(t, w)["card_name"])
	assert.Equal(t, "BT1-010", decodeBody(t, w)["card_number"])

	w = serve(r, http.MethodPatch, "/cards/1", `{"card_name":""}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Validation failed.", decodeBody(t, w)["message"])

	svc.AssertNumberOfCalls(t, "UpdateCard", 1)
}

func TestCardHandler_HandleDeleteCard(t *testing.T) {
	svc := new(mockCardService)
	svc.On("DeleteCard", uint(1)).Return(agumon, nil)
	svc.On("DeleteCard", uint(2)).Return(domain.Card{}, service.ErrNotFound)
	r := newCardRouter(svc)

	w := serve(r, http.MethodDelete, "/cards/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Card BT1-010 Agumon deleted successfully."}`, w.Body.String())

	w = serve(r, http.MethodDelete, "/cards/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Card with id 2 does not exist"}`, w.Body.String())
}

func newDecklistRouter(svc DecklistService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewDecklistHandler(svc)
	r.POST("/decklists/", h.HandleAddCard)
	r.GET("/decklists/", h.HandleGetDecklists)
	r.DELETE("/decklists/:deckID/:cardID", h.HandleRemoveCard)

	return r
}

func TestDecklistHandler_HandleAddCard(t *testing.T) {
	svc := new(mockDecklistService)
	svc.On("AddCard", domain.Decklist{DeckID: 1, CardID: 2}).
		Return(domain.Decklist{DeckID: 1, CardID: 2, Quantity: 1}, nil)
	r := newDecklistRouter(svc)

	w := serve(r, http.MethodPost, "/decklists/", `{"deck_id":1,"card_id":2}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["card_quantity"])

	w = serve(r, http.MethodPost, "/decklists/", `{"deck_id":1,"card_id":2,"card_quantity":0}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{
		"message": "Validation failed.",
		"errors": {"card_quantity": "At least 1 copy of this card needs to be added into the decklist."}
	}`, w.Body.String())

	svc.AssertNumberOfCalls(t, "AddCard", 1)
}

func TestDecklistHandler_HandleAddCard_FieldTypeErrors(t *testing.T) {
	svc := new(mockDecklistService)
	r := newDecklistRouter(svc)

	tests := []struct {
		body  string
		field string
	}{
		{body: `{"deck_id":1,"card_id":2,"card_quantity":"abc"}`, field: "card_quantity"},
		{body: `{"deck_id":-1,"card_id":2}`, field: "deck_id"},
		{body: `{"deck_id":1,"card_id":2.5}`, field: "card_id"},
	}

	for _, tt := range tests {
		w := serve(r, http.MethodPost, "/decklists/", tt.body)

		assert.Equal(t, http.StatusNotFound, w.Code, tt.body)
		assert.Equal(t, map[string]interface{}{tt.field: "Not a valid integer."}, decodeBody(t, w)["errors"], tt.body)
	}

	svc.AssertNotCalled(t, "AddCard", mock.Anything)
}

func TestDecklistHandler_HandleRemoveCard_NotAnID(t *testing.T) {
	svc := new(mockDecklistService)

	w := serve(newDecklistRouter(svc), http.MethodDelete, "/decklists/1/abc", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Requested resource not found/ does not exist"}`, w.Body.String())
	svc.AssertNotCalled(t, "RemoveCard", mock.Anything, mock.Anything)
}

func TestDecklistHandler_HandleGetDecklists(t *testing.T) {
	deckID := uint(1)

	svc := new(mockDecklistService)
	svc.On("GetDecklists", domain.DecklistFilter{DeckID: &deckID}).Return([]domain.Decklist{}, nil)
	r := newDecklistRouter(svc)

	w := serve(r, http.MethodGet, "/decklists/?deck_id=1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"No records found. Add a statement to get started."}`, w.Body.String())

	w = serve(r, http.MethodGet, "/decklists/?deck_id=red", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertExpectations(t)
}

func TestDecklistHandler_HandleRemoveCard(t *testing.T) {
	svc := new(mockDecklistService)
	svc.On("RemoveCard", uint(1), uint(2)).Return(nil)
	svc.On("RemoveCard", uint(1), uint(3)).Return(fmt.Errorf("s.repo.Delete -> %w", service.ErrNotFound))
	r := newDecklistRouter(svc)

	w := serve(r, http.MethodDelete, "/decklists/1/2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Card ID 2 has been removed from Deck ID 1."}`, w.Body.String())

	w = serve(r, http.MethodDelete, "/decklists/1/3", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Card ID 3 does not exist in Deck ID 1."}`, w.Body.String())
}

func TestHandleWelcome(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", HandleWelcome)

	w := serve(r, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeBody(t, w)["message"], "Camp Granada")
}

func TestHandleNoRoute(t *testing.T) {
	w := serve(newCardRouter(new(mockCardService)), http.MethodGet, "/tournaments/", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Requested resource not found/ does not exist"}`, w.Body.String())
}

func TestHealthHandler_HandleHealthcheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	up := gin.New()
	up.GET("/healthz", NewHealthHandler(pingerFunc(func(context.Context) error { return nil })).HandleHealthcheck)

	w := serve(up, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())

	down := gin.New()
	down.GET("/healthz", NewHealthHandler(pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") })).HandleHealthcheck)

	w = serve(down, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
