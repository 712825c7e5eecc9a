package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrValidation(t *testing.T) {
	err := fmt.Errorf("bind -> %w", validation.Errors{
		"card_name":   errors.New("Card cannot have a blank name."),
		"card_rarity": errors.New("Only valid card rarities are allowed."),
	})

	got := ErrValidation(err)

	assert.Equal(t, http.StatusNotFound, got.HTTPStatusCode)
	assert.Equal(t, msgValidation, got.Message)
	assert.Equal(t, map[string]string{
		"card_name":   "Card cannot have a blank name.",
		"card_rarity": "Only valid card rarities are allowed.",
	}, got.Errors)
	assert.ErrorIs(t, got, err)
}

func TestErrValidation_NotFieldErrors(t *testing.T) {
	got := ErrValidation(errors.New("rule panicked"))

	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatusCode)
	assert.Equal(t, msgInternalServer, got.Message)
	assert.Nil(t, got.Errors)
}

func TestErrStorage(t *testing.T) {
	unique := &pgconn.PgError{
		Code:   pgerrcode.UniqueViolation,
		Detail: "Key (card_number)=(BT1-010) already exists.",
	}

	got := ErrStorage(fmt.Errorf("s.repo.Create -> %w", unique))
	assert.Equal(t, http.StatusConflict, got.HTTPStatusCode)
	assert.Equal(t, unique.Detail, got.Message)

	got = ErrStorage(errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatusCode)
	assert.Equal(t, msgInternalServer, got.Message)
}

func TestErrBadRequest(t *testing.T) {
	got := ErrBadRequest(errors.New("invalid cardID"))

	assert.Equal(t, http.StatusBadRequest, got.HTTPStatusCode)
	assert.Equal(t, "invalid cardID", got.Message)
}

func TestRenderErr(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/cards/7", nil)

	RenderErr(ctx, ErrValidation(validation.Errors{"deck_name": errors.New("A deck must have a name and cannot be blank.")}))

	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{
		"message": msgValidation,
		"errors":  map[string]interface{}{"deck_name": "A deck must have a name and cannot be blank."},
	}, body)
}

func TestRenderErr_OmitsEmptyErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodDelete, "/cards/7", nil)

	RenderErr(ctx, ErrNotFound("Card with id 7 does not exist"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Card with id 7 does not exist"}`, w.Body.String())
}

func TestNewMessage(t *testing.T) {
	assert.Equal(t, Message{Message: "Deck Red Hybrid deleted successfully."}, NewMessage("Deck %s deleted successfully.", "Red Hybrid"))
}
