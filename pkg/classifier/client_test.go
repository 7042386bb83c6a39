package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SinlessRook/BayMax-Backend/pkg/emotion"
)

func TestNewInferenceClient(t *testing.T) {
	t.Run("requires config", func(t *testing.T) {
		_, err := NewInferenceClient(nil)
		assert.Error(t, err)
	})

	t.Run("requires base URL", func(t *testing.T) {
		_, err := NewInferenceClient(&InferenceConfig{})
		assert.Error(t, err)
	})

	t.Run("applies defaults", func(t *testing.T) {
		client, err := NewInferenceClient(&InferenceConfig{BaseURL: "http://localhost:8080"})
		require.NoError(t, err)

		assert.Equal(t, "bhadresh-savani/bert-base-uncased-emotion", client.config.Model)
		assert.Equal(t, 30*time.Second, client.config.Timeout)
		assert.Equal(t, 3, client.config.Retries)
	})
}

func TestInferenceClientClassify(t *testing.T) {
	t.Run("returns the top candidate from a nested response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/models/test-model", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "I am thrilled", req["inputs"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[[{"label":"JOY","score":0.95},{"label":"sadness","score":0.03}]]`))
		}))
		defer server.Close()

		client, err := NewInferenceClient(&InferenceConfig{
			BaseURL: server.URL,
			APIKey:  "test-key",
			Model:   "test-model",
		})
		require.NoError(t, err)

		pred, err := client.Classify(context.Background(), "I am thrilled")
		require.NoError(t, err)
		assert.Equal(t, emotion.LabelJoy, pred.Label)
		assert.Equal(t, 0.95, pred.Score)
	})

	t.Run("handles the flat response shape", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"label":"fear","score":0.7},{"label":"joy","score":0.2}]`))
		}))
		defer server.Close()

		client, err := NewInferenceClient(&InferenceConfig{BaseURL: server.URL, Model: "m"})
		require.NoError(t, err)

		pred, err := client.Classify(context.Background(), "what was that noise")
		require.NoError(t, err)
		assert.Equal(t, emotion.LabelFear, pred.Label)
	})

	t.Run("retries on server errors", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`[[{"label":"anger","score":0.8}]]`))
		}))
		defer server.Close()

		client, err := NewInferenceClient(&InferenceConfig{BaseURL: server.URL, Model: "m", Retries: 3})
		require.NoError(t, err)

		pred, err := client.Classify(context.Background(), "this is infuriating")
		require.NoError(t, err)
		assert.Equal(t, emotion.LabelAnger, pred.Label)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"bad input"}`))
		}))
		defer server.Close()

		client, err := NewInferenceClient(&InferenceConfig{BaseURL: server.URL, Model: "m", Retries: 3})
		require.NoError(t, err)

		_, err = client.Classify(context.Background(), "hello")
		require.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("rejects empty text", func(t *testing.T) {
		client, err := NewInferenceClient(&InferenceConfig{BaseURL: "http://localhost:8080"})
		require.NoError(t, err)

		_, err = client.Classify(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestDecodeCandidates(t *testing.T) {
	t.Run("rejects garbage", func(t *testing.T) {
		_, err := decodeCandidates([]byte(`{"error":"model loading"}`))
		assert.Error(t, err)
	})
}

func TestInferenceClientName(t *testing.T) {
	client, err := NewInferenceClient(&InferenceConfig{BaseURL: "http://localhost:8080", Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "inference:m", client.Name())
}
