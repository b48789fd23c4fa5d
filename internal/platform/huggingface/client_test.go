package huggingface

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(logger.NewNop(), Options{
		BaseURL:       srv.URL + "/",
		APIKey:        "hf_test",
		SimplifyModel: "org/simplify",
		TTSModel:      "org/tts",
	})
	require.NoError(t, err)
	return c
}

func TestSimplifySendsInputsWithBearer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/org/simplify", r.URL.Path)
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"inputs": "The cat sat."}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"generated_text":"Cat sat."}]`)
	})

	raw, err := c.Simplify(context.Background(), "The cat sat.")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"generated_text":"Cat sat."}]`, string(raw))
}

func TestSynthesizeSpeechReturnsRawBytes(t *testing.T) {
	audio := []byte{0x66, 0x4c, 0x61, 0x43, 0x00, 0x01}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/org/tts", r.URL.Path)
		w.Header().Set("Content-Type", "audio/flac")
		_, _ = w.Write(audio)
	})

	got, err := c.SynthesizeSpeech(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, audio, got)
}

func TestSimplifyNon2xxIsStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"error":"Model is currently loading"}`)
	})

	_, err := c.Simplify(context.Background(), "hello")
	require.Error(t, err)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
	assert.Equal(t, "org/simplify", se.Model)
}

func TestSynthesizeSpeechPassesErrorBodyThrough(t *testing.T) {
	const body = `{"error":"Model is currently loading","estimated_time":20}`
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, body)
	})

	got, err := c.SynthesizeSpeech(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

func TestTransportFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := New(logger.NewNop(), Options{BaseURL: url})
	require.NoError(t, err)
	_, err = c.Simplify(context.Background(), "x")
	require.Error(t, err)
	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestNewAppliesDefaults(t *testing.T) {
	c, err := New(logger.NewNop(), Options{})
	require.NoError(t, err)
	impl := c.(*client)
	assert.Equal(t, DefaultBaseURL, impl.baseURL)
	assert.Equal(t, DefaultSimplifyModel, impl.simplifyModel)
	assert.Equal(t, DefaultTTSModel, impl.ttsModel)
}

func TestNewRequiresLogger(t *testing.T) {
	_, err := New(nil, Options{})
	require.Error(t, err)
}
