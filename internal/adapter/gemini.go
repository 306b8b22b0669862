// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-ordo-keeper/internal/config"
	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/internal/utils"
	"github.com/MKhiriev/go-ordo-keeper/internal/validators"
	"github.com/MKhiriev/go-ordo-keeper/models"
)

const (
	apiKeyHeader     = "x-goog-api-key"
	jsonResponseMime = "application/json"
)

const npcPromptTemplate = `
Gere um personagem NPC para um RPG de mesa usando o sistema "%s".
O NPC deve ser interessante, ter um nome, e uma breve descrição (máximo 2 frases) focada em horror ou mistério.

Retorne APENAS um objeto JSON com o seguinte formato, sem markdown:
{
  "name": "Nome do NPC",
  "description": "Descrição curta e misteriosa.",
  "hpMax": 20,
  "sanMax": 10
}
`

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type geminiNPCGenerator struct {
	client    *utils.HTTPClient
	validator validators.Validator

	apiKey string
	model  string

	logger *logger.Logger
}

// NewGeminiNPCGenerator constructs the REST implementation of [NPCGenerator].
// It normalises the base URL from adapterCfg.BaseURL and configures the
// underlying HTTP client with it and the request timeout. Retries are left
// disabled: every generation is a single attempt.
//
// An empty adapterCfg.APIKey is accepted; the generator then reports
// [ErrGeneratorDisabled] on every call.
func NewGeminiNPCGenerator(adapterCfg config.ClientAdapter, logger *logger.Logger) (NPCGenerator, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid generator base url: %w", err)
	}

	model := strings.TrimSpace(adapterCfg.Model)
	if model == "" {
		return nil, fmt.Errorf("invalid generator model: empty")
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetRetryCount(0)

	return &geminiNPCGenerator{
		client:    client,
		validator: validators.NewNPCProfileValidator(),
		apiKey:    strings.TrimSpace(adapterCfg.APIKey),
		model:     model,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GenerateNPC implements [NPCGenerator]. It POSTs the prompt to
// {base}/models/{model}:generateContent and decodes the first non-empty text
// part of the answer as an [models.NPCProfile].
func (g *geminiNPCGenerator) GenerateNPC(ctx context.Context, systemName, ownerID string) (*models.Character, error) {
	if g.apiKey == "" {
		return nil, ErrGeneratorDisabled
	}

	body := generateContentRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: fmt.Sprintf(npcPromptTemplate, systemName)}},
		}},
		GenerationConfig: generationConfig{ResponseMimeType: jsonResponseMime},
	}

	var answer generateContentResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(apiKeyHeader, g.apiKey).
		SetBody(body).
		SetResult(&answer).
		Post("/models/" + url.PathEscape(g.model) + ":generateContent")
	if err != nil {
		return nil, fmt.Errorf("generate npc request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	text := firstText(answer)
	if text == "" {
		return nil, fmt.Errorf("%w: empty answer", ErrMalformedResponse)
	}

	profile, err := decodeProfile(text)
	if err != nil {
		return nil, err
	}
	if err = g.validator.Validate(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	g.logger.Debug().
		Str("func", "geminiNPCGenerator.GenerateNPC").
		Str("system", systemName).
		Str("npc_name", profile.Name).
		Msg("npc generated")

	return models.NewNPCDraft(profile, ownerID), nil
}

func firstText(answer generateContentResponse) string {
	for _, candidate := range answer.Candidates {
		for _, p := range candidate.Content.Parts {
			if text := strings.TrimSpace(p.Text); text != "" {
				return text
			}
		}
	}
	return ""
}

// decodeProfile parses the model's answer. Markdown code fences are tolerated
// even though the prompt asks for bare JSON.
func decodeProfile(text string) (models.NPCProfile, error) {
	text = stripCodeFence(text)

	var profile models.NPCProfile
	if err := json.Unmarshal([]byte(text), &profile); err != nil {
		return models.NPCProfile{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return profile, nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	// drop the opening fence together with an optional language tag
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}

	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))
}
