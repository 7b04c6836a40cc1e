// Package gemini implements the text generator against the Generative Language API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ondeta/config"
	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/domain/service"
	"ondeta/internal/errors"

	"github.com/avast/retry-go/v4"
	"go.uber.org/fx"
)

const (
	providerName   = "gemini"
	retryBaseDelay = 500 * time.Millisecond
	blockThreshold = "BLOCK_MEDIUM_AND_ABOVE"
)

var errRetryable = errors.New("gemini transient failure")

// harmCategories are filtered at blockThreshold on every request.
var harmCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}

// Params holds dependencies for the client, injected by Fx
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.MetricsRecorder `optional:"true"`
}

// Client calls generateContent for a single model.
type Client struct {
	endpoint    string
	apiKey      string
	maxAttempts uint
	retryDelay  time.Duration
	settings    generationConfig

	httpc   *http.Client
	metrics service.MetricsRecorder
	logger  *slog.Logger
}

// NewTextGenerator builds the client from the gemini config section.
func NewTextGenerator(params Params) service.TextGenerator {
	return New(params.Config.Gemini, params.Logger, params.Metrics)
}

// New builds a client. A nil metrics recorder disables instrumentation.
func New(cfg config.GeminiConfig, logger *slog.Logger, metrics service.MetricsRecorder) *Client {
	return &Client{
		endpoint:    strings.TrimRight(cfg.BaseURL, "/") + "/models/" + cfg.Model + ":generateContent",
		apiKey:      strings.TrimSpace(cfg.APIKey),
		maxAttempts: max(1, cfg.MaxAttempts),
		retryDelay:  retryBaseDelay,
		settings: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
		httpc:   &http.Client{Timeout: cfg.Timeout},
		metrics: metrics,
		logger:  logger.With(slog.String("provider", providerName)),
	}
}

// Generate sends prompt as a single user turn and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", domainerrors.ErrAssistantUnavailable.WithDetails("gemini api key not configured")
	}

	reqBody := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: c.settings,
		SafetySettings:   make([]safetySetting, 0, len(harmCategories)),
	}
	for _, category := range harmCategories {
		reqBody.SafetySettings = append(reqBody.SafetySettings, safetySetting{Category: category, Threshold: blockThreshold})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal gemini request")
	}

	start := time.Now()
	var text string
	err = retry.Do(
		func() error {
			var err error
			text, err = c.post(ctx, payload)

			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.maxAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, errRetryable)
		}),
		retry.OnRetry(func(n uint, err error) {
			c.logger.WarnContext(ctx, "Retrying provider call",
				slog.Uint64("attempt", uint64(n+1)),
				slog.Any("error", err),
			)
		}),
	)
	if c.metrics != nil {
		c.metrics.RecordProviderCall(providerName, err, time.Since(start))
	}
	if err != nil {
		return "", domainerrors.ErrAssistantUnavailable.WithDetails(err.Error())
	}

	return text, nil
}

func (c *Client) post(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "failed to create gemini request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		return "", errors.Wrapf(errRetryable, "request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return "", errors.Wrapf(errRetryable, "status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return "", errors.Wrapf(err, "decode gemini response (status %d)", resp.StatusCode)
	}
	if out.Error != nil {
		return "", errors.Errorf("gemini error %d: %s", out.Error.Code, out.Error.Message)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", errors.Errorf("gemini status %d", resp.StatusCode)
	}
	if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
		return "", errors.Errorf("prompt blocked: %s", out.PromptFeedback.BlockReason)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	return sb.String(), nil
}

// Module provides the Gemini FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTextGenerator),
)
