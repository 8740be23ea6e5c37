package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler("german", 11)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got Status
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, Status{Status: "ok", RuleSet: "german", Layers: 11}, got)
}
