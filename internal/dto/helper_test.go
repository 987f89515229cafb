package dto

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrix/agrix/internal/domain"
	apperrors "github.com/agrix/agrix/internal/pkg/errors"
	"github.com/agrix/agrix/internal/validator"
)

func TestParseAndValidate(t *testing.T) {
	var parseErr error
	var parsed domain.FarmInput

	app := fiber.New()
	app.Post("/farms", func(c *fiber.Ctx) error {
		parsed = domain.FarmInput{}
		parseErr = ParseAndValidate(c, &parsed)
		return c.SendStatus(fiber.StatusNoContent)
	})

	post := func(t *testing.T, body string) {
		req := httptest.NewRequest("POST", "/farms", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
	}

	t.Run("valid body", func(t *testing.T) {
		post(t, `{"name":"Green Valley","size":120}`)

		require.NoError(t, parseErr)
		assert.Equal(t, domain.FarmInput{Name: "Green Valley", Size: 120}, parsed)
	})

	t.Run("malformed body", func(t *testing.T) {
		post(t, `{"name":`)

		require.Error(t, parseErr)
		appErr := apperrors.GetAppError(parseErr)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.CodeBadRequest, appErr.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		post(t, `{"name":"  ","size":0}`)

		require.Error(t, parseErr)
		verrs, ok := parseErr.(validator.ValidationErrors)
		require.True(t, ok)
		assert.Len(t, verrs, 2)
	})
}
