package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agrix/agrix/internal/testutil"
)

// setupTestApp registers every domain route over freshly wired services
func setupTestApp(t *testing.T) (*fiber.App, *testutil.Services) {
	t.Helper()

	svcs := testutil.NewServices(t)
	logger := zap.NewNop()

	app := fiber.New()
	NewFarmsHandler(svcs.Farms, logger).RegisterRoutes(app)
	NewCropsHandler(svcs.Crops, logger).RegisterRoutes(app)
	NewFertilizersHandler(svcs.Fertilizers, logger).RegisterRoutes(app)

	return app, svcs
}

// doRequest sends a request with an optional JSON body and decodes the JSON
// response into out when out is not nil. It returns the status code.
func doRequest(t *testing.T, app *fiber.App, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(data)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
