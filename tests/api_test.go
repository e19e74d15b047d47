package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"finderskeeper/internal/adapter/api"
	"finderskeeper/internal/adapter/api/handler"
)

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, handler.HealthCheck(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ok")
	}
}

func TestValidatorRejectsMissingFields(t *testing.T) {
	v := api.NewValidator()

	type replyPayload struct {
		ItemID          string `json:"itemId" validate:"required"`
		RecipientUserID string `json:"recipientUserId" validate:"required"`
		Message         string `json:"message" validate:"required,max=1000"`
	}

	assert.Error(t, v.Validate(&replyPayload{}))
	assert.Error(t, v.Validate(&replyPayload{
		ItemID:          "item-1",
		RecipientUserID: "user-b",
		Message:         strings.Repeat("x", 1001),
	}))
	assert.NoError(t, v.Validate(&replyPayload{
		ItemID:          "item-1",
		RecipientUserID: "user-b",
		Message:         "hello",
	}))
}
