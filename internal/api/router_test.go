package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitcoinbrisbane/LBRYAddress/internal/config"
	"github.com/bitcoinbrisbane/LBRYAddress/internal/model"
)

func TestSetupRouterRoutes(t *testing.T) {
	require.NoError(t, config.Init())

	router, err := SetupRouter()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/wallet/generate", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var wallet model.WalletResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&wallet))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wallet/validate?address="+wallet.Address, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var validate model.ValidateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&validate))
	assert.True(t, validate.Valid)
	assert.True(t, strings.HasPrefix(validate.Address, "b"))
}
