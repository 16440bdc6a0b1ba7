// Package wishes proxies the guest-book wish suggestion to a hosted
// text-generation API. It contributes no logic of its own: build a prompt,
// call upstream, and fall back to a canned wish on any failure.
package wishes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/elsmrh/sami-yaya/pkg/logger"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-3-flash-preview"
	defaultTimeout = 15 * time.Second

	// FallbackWish is served whenever the upstream call cannot produce text.
	FallbackWish = "Nos meilleurs vœux de bonheur éternel."
)

// Tones accepted for a wish request.
const (
	ToneFormal      = "Formel"
	ToneFunny       = "Drôle"
	ToneSentimental = "Touchant"
	TonePoetic      = "Poétique"
)

// Config carries the upstream API settings. An empty APIKey disables the
// upstream call entirely.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Service generates short congratulation wishes for the guest book.
type Service struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewService builds the wish generator.
func NewService(cfg Config) *Service {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Service{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: timeout},
		log:     logger.WithModule("wishes"),
	}
}

// Generate returns a suggested wish for the given relationship and tone. It
// never fails: any upstream problem yields the fallback wish.
func (s *Service) Generate(ctx context.Context, relationship, tone string) string {
	if s == nil || s.apiKey == "" {
		return FallbackWish
	}

	text, err := s.generateContent(ctx, buildPrompt(relationship, tone))
	if err != nil {
		s.log.Warn("wish generation failed", zap.Error(err))
		return FallbackWish
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackWish
	}
	return text
}

func buildPrompt(relationship, tone string) string {
	var b strings.Builder
	b.WriteString("Tu es un assistant créatif pour un mariage.\n")
	b.WriteString("Écris un court message de félicitations (2-3 phrases max) pour le livre d'or du mariage de Sami et Prescillia.\n\n")
	b.WriteString("Contexte :\n")
	fmt.Fprintf(&b, "- Relation avec les mariés : %s\n", relationship)
	fmt.Fprintf(&b, "- Ton du message : %s\n\n", tone)
	b.WriteString("Réponds uniquement avec le texte du message, en français.")
	return b.String()
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (s *Service) generateContent(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("wishes: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("wishes: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("wishes: call upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wishes: upstream status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("wishes: decode response: %w", err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("wishes: empty candidate list")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
