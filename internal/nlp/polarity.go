package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Oracle define la interfaz del oráculo de polaridad de sentimiento.
// Polarity devuelve un valor en [-1, 1] para cualquier texto, incluido el vacío.
type Oracle interface {
	Polarity(ctx context.Context, text string) (float64, error)
}

type logger interface {
	Printf(format string, v ...interface{})
}

// HTTPOracle implementa Oracle contra una API externa de análisis de sentimiento.
type HTTPOracle struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  logger
}

// NewHTTPOracle construye un cliente HTTP apuntando al endpoint de sentimiento.
func NewHTTPOracle(baseURL, apiKey string, log any) *HTTPOracle {
	l, _ := log.(logger)
	return &HTTPOracle{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  l,
	}
}

func (o *HTTPOracle) Polarity(ctx context.Context, text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	bodyBytes, err := json.Marshal(sentimentRequest{Text: text})
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/sentiment", bytes.NewReader(bodyBytes))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	if o.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+o.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if o.logger != nil {
			o.logger.Printf("sentiment error status %d: %s", resp.StatusCode, string(respBody))
		}
		return 0, fmt.Errorf("sentiment http error: status=%d", resp.StatusCode)
	}

	var sr sentimentResponse
	if err := json.Unmarshal(respBody, &sr); err != nil {
		return 0, fmt.Errorf("unmarshal response: %w", err)
	}

	return clampPolarity(sr.Polarity), nil
}

func clampPolarity(p float64) float64 {
	if p < -1 {
		return -1
	}
	if p > 1 {
		return 1
	}
	return p
}

type sentimentRequest struct {
	Text string `json:"text"`
}

type sentimentResponse struct {
	Polarity float64 `json:"polarity"`
}
