package translate

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

type logger interface {
	Printf(format string, v ...interface{})
}

// HTTPTranslator implementa Translator contra una API compatible con
// LibreTranslate (/detect y /translate).
type HTTPTranslator struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  logger
}

// NewHTTPTranslator construye un cliente HTTP para el servicio de traducción.
func NewHTTPTranslator(baseURL, apiKey string, log any) *HTTPTranslator {
	l, _ := log.(logger)
	return &HTTPTranslator{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  l,
	}
}

func (t *HTTPTranslator) DetectLanguage(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return CanonicalLang, nil
	}

	var out []struct {
		Language string `json:"language"`
	}
	if err := t.post(ctx, "/detect", map[string]string{"q": text, "api_key": t.apiKey}, &out); err != nil {
		return "", err
	}
	if len(out) == 0 || out[0].Language == "" {
		return "", fmt.Errorf("translate: empty detect response")
	}
	return out[0].Language, nil
}

func (t *HTTPTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	if fromLang == toLang || strings.TrimSpace(text) == "" {
		return text, nil
	}

	var out struct {
		TranslatedText string `json:"translatedText"`
	}
	payload := map[string]string{
		"q":       text,
		"source":  fromLang,
		"target":  toLang,
		"api_key": t.apiKey,
	}
	if err := t.post(ctx, "/translate", payload, &out); err != nil {
		return "", err
	}
	if out.TranslatedText == "" {
		return "", fmt.Errorf("translate: empty translate response")
	}
	return out.TranslatedText, nil
}

func (t *HTTPTranslator) post(ctx context.Context, path string, payload any, out any) error {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if t.logger != nil {
			t.logger.Printf("translate error status %d: %s", resp.StatusCode, string(respBody))
		}
		return fmt.Errorf("translate http error: status=%d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
