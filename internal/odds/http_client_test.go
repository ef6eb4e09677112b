package odds

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/stake-engine/internal/config"
	"github.com/yourusername/stake-engine/internal/models"
)

func newHTTPConverterForTest(t *testing.T, handler http.HandlerFunc) *HTTPConverter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.ConverterConfig{
		Mode:           "http",
		URL:            server.URL,
		APIKey:         "test-key",
		TimeoutSeconds: 2,
		MaxRetries:     0,
		RateLimit:      100,
	}
	return NewHTTPConverter(cfg, newTestLogger())
}

func TestHTTPConverterConvert(t *testing.T) {
	conv := newHTTPConverterForTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/convert", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		var req struct {
			Format string `json:"format"`
			Value  string `json:"value"`
			Target string `json:"target"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "moneyline", req.Format)
		assert.Equal(t, "-110", req.Value)
		assert.Equal(t, "decimal", req.Target)

		json.NewEncoder(w).Encode(map[string]float64{"result": 1.909090909090909})
	})

	got, err := conv.Convert(models.NewMoneyline(-110), models.FormatDecimal)
	require.NoError(t, err)
	assert.InDelta(t, 1.9090909, got, 1e-6)
}

func TestHTTPConverterMapsRejectionsToInvalidPrice(t *testing.T) {
	conv := newHTTPConverterForTest(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unparseable price", http.StatusUnprocessableEntity)
	})

	_, err := conv.Convert(models.Price{Format: models.FormatFractional, Value: "??"}, models.FormatDecimal)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestHTTPConverterUnavailableService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	cfg := &config.ConverterConfig{
		Mode:           "http",
		URL:            server.URL,
		TimeoutSeconds: 1,
		MaxRetries:     0,
		RateLimit:      100,
	}
	conv := NewHTTPConverter(cfg, newTestLogger())

	_, err := conv.Convert(models.NewDecimal(2.0), models.FormatProbability)
	assert.ErrorIs(t, err, ErrConverterUnavailable)
}
