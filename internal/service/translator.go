package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"newsdash/config"
)

// TranslatorService translates article titles through an OpenAI-compatible
// chat endpoint. The language pair is fixed (auto-detect to the configured
// target); no source-language detection happens.
type TranslatorService struct {
	client *http.Client
	cfg    config.TranslatorConfig
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewTranslatorService(cfg config.TranslatorConfig) *TranslatorService {
	return &TranslatorService{
		client: &http.Client{},
		cfg:    cfg,
	}
}

// Enabled reports whether a translation endpoint is configured at all.
func (s *TranslatorService) Enabled() bool {
	return s.cfg.ApiKey != "" && s.cfg.ApiURL != ""
}

// Ping checks that the endpoint answers at all. The pipeline calls this once
// per refresh: an unreachable endpoint is a batch failure, unlike individual
// translation misses.
func (s *TranslatorService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.ApiURL+"/models", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.ApiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("translation endpoint unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("translation endpoint returned %s", resp.Status)
	}
	return nil
}

// Translate returns the title in the target language. Callers fall back to
// the original title on error.
func (s *TranslatorService) Translate(ctx context.Context, title string) (string, error) {
	prompt := fmt.Sprintf(
		"Translate the following news headline to %s. Reply with the translation only, no quotes.",
		s.cfg.Language)

	reqBody := chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt},
			{Role: "user", Content: title},
		},
	}

	jsonBody, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.cfg.ApiURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.ApiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	translated := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if translated == "" {
		return "", fmt.Errorf("blank translation")
	}
	return translated, nil
}
