// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-ordo-keeper/internal/config"
	"github.com/MKhiriev/go-ordo-keeper/internal/logger"
	"github.com/MKhiriev/go-ordo-keeper/internal/validators"
	"github.com/MKhiriev/go-ordo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = "gemini-2.5-flash"

func newTestGenerator(t *testing.T, serverURL, apiKey string) *geminiNPCGenerator {
	t.Helper()
	cfg := config.ClientAdapter{
		BaseURL:        serverURL,
		APIKey:         apiKey,
		Model:          testModel,
		RequestTimeout: 5 * time.Second,
	}

	g, err := NewGeminiNPCGenerator(cfg, logger.Nop())
	require.NoError(t, err)
	return g.(*geminiNPCGenerator)
}

func answerWithText(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	})
	require.NoError(t, err)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewGeminiNPCGenerator_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ClientAdapter
	}{
		{name: "empty base url", cfg: config.ClientAdapter{Model: testModel}},
		{name: "host missing", cfg: config.ClientAdapter{BaseURL: "http://", Model: testModel}},
		{name: "empty model", cfg: config.ClientAdapter{BaseURL: "http://localhost", Model: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGeminiNPCGenerator(tt.cfg, logger.Nop())
			assert.Error(t, err)
			assert.Nil(t, g)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "https://example.com/v1beta/", want: "https://example.com/v1beta"},
		{raw: "  example.com/v1beta ", want: "https://example.com/v1beta"},
		{raw: "http://127.0.0.1:8080", want: "http://127.0.0.1:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── GenerateNPC ─────────────────────────────────────────────────────────────

func TestGenerateNPC_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/"+testModel+":generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get(apiKeyHeader))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req generateContentRequest
		require.NoError(t, json.Unmarshal(raw, &req))
		assert.Equal(t, jsonResponseMime, req.GenerationConfig.ResponseMimeType)
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, `usando o sistema "D&D 5e"`)

		answerWithText(t, w, `{"name":"Velha Marta","description":"Vê o que não deveria.","hpMax":12,"sanMax":7}`)
	}))
	defer srv.Close()

	g := newTestGenerator(t, srv.URL+"/v1beta", "secret")
	draft, err := g.GenerateNPC(context.Background(), "D&D 5e", "u-gm")

	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Empty(t, draft.ID)
	assert.Empty(t, draft.SystemID)
	assert.Equal(t, "Velha Marta", draft.Name)
	assert.Equal(t, "Vê o que não deveria.", draft.Description)
	assert.Equal(t, models.CharacterNPC, draft.Type)
	assert.Equal(t, "u-gm", draft.OwnerID)
	assert.Equal(t, models.Vital{Current: 12, Max: 12}, draft.HP)
	assert.Equal(t, models.Vital{Current: 7, Max: 7}, draft.San)
	assert.Equal(t, models.NPCAttributes(), draft.Attributes)
}

func TestGenerateNPC_StripsCodeFence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		answerWithText(t, w, "```json\n{\"name\":\"Dr. Veríssimo\",\"description\":\"x\",\"hpMax\":20,\"sanMax\":10}\n```")
	}))
	defer srv.Close()

	g := newTestGenerator(t, srv.URL, "secret")
	draft, err := g.GenerateNPC(context.Background(), "Ordem Paranormal", "u-gm")

	require.NoError(t, err)
	assert.Equal(t, "Dr. Veríssimo", draft.Name)
}

func TestGenerateNPC_SkipsEmptyParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[
			{"content":{"parts":[{"text":"  "}]}},
			{"content":{"parts":[{"text":""},{"text":"{\"name\":\"Iara\",\"hpMax\":5,\"sanMax\":5}"}]}}
		]}`))
	}))
	defer srv.Close()

	g := newTestGenerator(t, srv.URL, "secret")
	draft, err := g.GenerateNPC(context.Background(), "Ordem Paranormal", "u-gm")

	require.NoError(t, err)
	assert.Equal(t, "Iara", draft.Name)
}

func TestGenerateNPC_DisabledWithoutKey(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	g := newTestGenerator(t, srv.URL, "")
	draft, err := g.GenerateNPC(context.Background(), "Ordem Paranormal", "u-gm")

	assert.ErrorIs(t, err, ErrGeneratorDisabled)
	assert.Nil(t, draft)
	assert.Zero(t, calls.Load())
}

func TestGenerateNPC_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte("bad key"))
			},
			wantErr: ErrUnauthorized,
		},
		{
			name: "forbidden",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantErr: ErrRateLimited,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: ErrUnexpectedStatus,
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"candidates":[]}`))
			},
			wantErr: ErrMalformedResponse,
		},
		{
			name: "text is not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				answerWithText(t, w, "Um velho coveiro chamado Tião.")
			},
			wantErr: ErrMalformedResponse,
		},
		{
			name: "profile without name",
			handler: func(w http.ResponseWriter, r *http.Request) {
				answerWithText(t, w, `{"description":"sem nome","hpMax":3}`)
			},
			wantErr: ErrMalformedResponse,
		},
		{
			name: "negative vitals",
			handler: func(w http.ResponseWriter, r *http.Request) {
				answerWithText(t, w, `{"name":"Tião","hpMax":-4,"sanMax":2}`)
			},
			wantErr: validators.ErrNegativeVital,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			g := newTestGenerator(t, srv.URL, "secret")
			draft, err := g.GenerateNPC(context.Background(), "Ordem Paranormal", "u-gm")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, draft)
		})
	}
}

func TestGenerateNPC_SingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := newTestGenerator(t, srv.URL, "secret")
	_, err := g.GenerateNPC(context.Background(), "Ordem Paranormal", "u-gm")

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGenerateNPC_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		answerWithText(t, w, `{"name":"x"}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := newTestGenerator(t, srv.URL, "secret")
	draft, err := g.GenerateNPC(ctx, "Ordem Paranormal", "u-gm")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, draft)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare", in: ` {"a":1} `, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "plain fence", in: "```\n{\"a\":1}\n```\n", want: `{"a":1}`},
		{name: "single line", in: "```{\"a\":1}```", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}
