// Package huggingface talks to the Hugging Face Inference API. Calls are unary,
// synchronous and never retried.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

const (
	DefaultBaseURL       = "https://api-inference.huggingface.co"
	DefaultSimplifyModel = "eilamc14/t5-base-text-simplification"
	DefaultTTSModel      = "microsoft/speecht5_tts"
)

type Options struct {
	BaseURL       string
	APIKey        string
	SimplifyModel string
	TTSModel      string

	// Zero means no client-side timeout.
	Timeout time.Duration

	HTTPClient *http.Client
}

// Client is the inference surface used by the services.
type Client interface {
	// Simplify returns the raw JSON body of the simplification model. Use
	// ParseSimplification to interpret it.
	Simplify(ctx context.Context, text string) (json.RawMessage, error)

	// SynthesizeSpeech returns the raw audio bytes produced by the TTS model.
	SynthesizeSpeech(ctx context.Context, text string) ([]byte, error)
}

type client struct {
	log           *logger.Logger
	baseURL       string
	apiKey        string
	simplifyModel string
	ttsModel      string
	httpClient    *http.Client
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

func New(log *logger.Logger, opts Options) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	simplifyModel := strings.Trim(strings.TrimSpace(opts.SimplifyModel), "/")
	if simplifyModel == "" {
		simplifyModel = DefaultSimplifyModel
	}
	ttsModel := strings.Trim(strings.TrimSpace(opts.TTSModel), "/")
	if ttsModel == "" {
		ttsModel = DefaultTTSModel
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return &client{
		log:           log.With("client", "HuggingFaceClient"),
		baseURL:       baseURL,
		apiKey:        strings.TrimSpace(opts.APIKey),
		simplifyModel: simplifyModel,
		ttsModel:      ttsModel,
		httpClient:    hc,
	}, nil
}

func (c *client) Simplify(ctx context.Context, text string) (json.RawMessage, error) {
	raw, status, err := c.post(ctx, c.simplifyModel, text)
	if err != nil {
		return nil, fmt.Errorf("simplify: %w", err)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("simplify: %w", &StatusError{Model: c.simplifyModel, StatusCode: status, Body: string(raw)})
	}
	return json.RawMessage(raw), nil
}

// SynthesizeSpeech hands back whatever body the model answered with, error
// statuses included; only transport failures are errors.
func (c *client) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	raw, status, err := c.post(ctx, c.ttsModel, text)
	if err != nil {
		return nil, fmt.Errorf("text-to-speech: %w", err)
	}
	if status < 200 || status >= 300 {
		c.log.Warn("Speech model answered with error status; passing body through",
			"model", c.ttsModel,
			"status", status,
			"bytes", len(raw),
		)
	}
	return raw, nil
}

func (c *client) post(ctx context.Context, model, text string) ([]byte, int, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(inferenceRequest{Inputs: text}); err != nil {
		return nil, 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/models/"+model, &buf)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("Inference request failed", "model", model, "error", err)
		return nil, 0, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, resp.StatusCode, readErr
	}
	c.log.Debug("Inference request done",
		"model", model,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return raw, resp.StatusCode, nil
}
