package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shellwatch/internal/config"
	domainerrors "shellwatch/internal/errors"
	"shellwatch/internal/models"
	"shellwatch/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) Name() string { return "mock" }

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	if s, ok := args.Get(2).(string); ok && args.Bool(0) {
		*dest.(*string) = s
	}
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func TestStubGenerator_KeywordReplies(t *testing.T) {
	gen := NewStubGenerator()
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"typology", "Identify the TYPOLOGY", stubReplies[0].reply},
		{"proximity", "threat proximity please", stubReplies[1].reply},
		{"summary", "write a case file summary", stubReplies[2].reply},
		{"brief", "FIU escalation brief", stubReplies[3].reply},
		{"typology wins over summary", "typology summary", stubReplies[0].reply},
		{"default", "hello", stubDefaultReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gen.Generate(context.Background(), tt.prompt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_CompleteFallsBack(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, "p").Return("", errors.New("quota exceeded"))

	svc := NewService(gen, nil, nil)

	assert.Equal(t, FallbackReply, svc.Complete(context.Background(), "p"))
	gen.AssertExpectations(t)
}

func TestService_ChatPrompt(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.HasPrefix(p, "You are a Senior Risk Analyst AI. Context: {\"entity\":\"c_101\"}") &&
			strings.HasSuffix(p, "\nUser: who owns it?\nAnswer:")
	})).Return("Oceanic Holdings", nil)

	svc := NewService(gen, nil, nil)
	reply := svc.Chat(context.Background(), ChatRequest{
		Message: "who owns it?",
		Context: map[string]interface{}{"entity": "c_101"},
	})

	assert.Equal(t, "Oceanic Holdings", reply)
	gen.AssertExpectations(t)
}

func newAnalyzeService(t *testing.T, gen TextGenerator) Service {
	t.Helper()
	graph, err := repositories.NewGraph([]models.Company{{
		ID: "c_101", Name: "Harbor Shell Ltd", Country: "Panama",
		BankingProfile: models.BankingProfile{AccountCount: 2, Jurisdictions: []string{"Panama", "BVI"}},
	}}, nil, nil)
	require.NoError(t, err)
	scores := repositories.NewScoreRepository([]models.RiskAssessment{{CompanyID: "c_101", Score: 82, Level: models.RiskLevelCritical}})
	return NewService(gen, graph, scores)
}

func TestService_Analyze(t *testing.T) {
	tests := []struct {
		analysisType string
		want         string
	}{
		{AnalysisTypology, stubReplies[0].reply},
		{AnalysisProximity, stubReplies[1].reply},
		{AnalysisNarrative, stubReplies[2].reply},
	}

	svc := newAnalyzeService(t, NewStubGenerator())
	for _, tt := range tests {
		t.Run(tt.analysisType, func(t *testing.T) {
			got, err := svc.Analyze(context.Background(), AnalyzeRequest{EntityID: "c_101", AnalysisType: tt.analysisType})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_AnalyzeUnknownEntity(t *testing.T) {
	gen := new(MockGenerator)
	svc := newAnalyzeService(t, gen)

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{EntityID: "c_999", AnalysisType: AnalysisTypology})

	assert.True(t, errors.Is(err, domainerrors.ErrCompanyNotFound))
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestService_AnalyzeIncludesRiskLevel(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "Risk Level: CRITICAL") && strings.Contains(p, "Panama, BVI")
	})).Return("ok", nil)

	got, err := newAnalyzeService(t, gen).Analyze(context.Background(), AnalyzeRequest{EntityID: "c_101", AnalysisType: AnalysisNarrative})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	gen.AssertExpectations(t)
}

func TestCachedGenerator_Hit(t *testing.T) {
	gen := new(MockGenerator)
	cache := new(MockCache)
	key := promptKey("mock", "p")
	cache.On("Get", mock.Anything, key, mock.Anything).Return(true, nil, "cached reply")

	got, err := NewCachedGenerator(gen, cache, time.Minute).Generate(context.Background(), "p")

	require.NoError(t, err)
	assert.Equal(t, "cached reply", got)
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestCachedGenerator_MissStores(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, "p").Return("fresh", nil)
	cache := new(MockCache)
	key := promptKey("mock", "p")
	cache.On("Get", mock.Anything, key, mock.Anything).Return(false, errors.New("redis down"), nil)
	cache.On("SetWithTTL", mock.Anything, key, "fresh", time.Minute).Return(nil)

	got, err := NewCachedGenerator(gen, cache, time.Minute).Generate(context.Background(), "p")

	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
	cache.AssertExpectations(t)
}

func TestCachedGenerator_ErrorNotCached(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, "p").Return("", errors.New("boom"))
	cache := new(MockCache)
	cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil, nil)

	_, err := NewCachedGenerator(gen, cache, time.Minute).Generate(context.Background(), "p")

	assert.Error(t, err)
	cache.AssertNotCalled(t, "SetWithTTL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPromptKey(t *testing.T) {
	a := promptKey("stub", "hello")
	assert.True(t, strings.HasPrefix(a, "ai:reply:"))
	assert.Len(t, a, len("ai:reply:")+64)
	assert.Equal(t, a, promptKey("stub", "hello"))
	assert.NotEqual(t, a, promptKey("gemini:gemini-pro", "hello"))
}

func TestGeminiClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-pro:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var body geminiRequest
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) && assert.Len(t, body.Contents, 1) {
			assert.Equal(t, "draft a SAR", body.Contents[0].Parts[0].Text)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"SAR "},{"text":"narrative"}]}}]}`))
	}))
	defer srv.Close()

	got, err := NewGeminiClient(srv.URL, "secret", "gemini-pro", time.Second).Generate(context.Background(), "draft a SAR")

	require.NoError(t, err)
	assert.Equal(t, "SAR narrative", got)
}

func TestGeminiClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"api error", http.StatusTooManyRequests, `{"error":{"code":429,"message":"quota"}}`},
		{"no candidates", http.StatusOK, `{"candidates":[]}`},
		{"empty text", http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":""}]}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewGeminiClient(srv.URL, "k", "gemini-pro", time.Second).Generate(context.Background(), "x")
			assert.Error(t, err)
		})
	}
}

func TestNewTextGenerator(t *testing.T) {
	gen, err := NewTextGenerator(config.AIConfig{Backend: config.TextGeneratorStub}, nil)
	require.NoError(t, err)
	assert.Equal(t, "stub", gen.Name())

	gen, err = NewTextGenerator(config.AIConfig{Backend: config.TextGeneratorStub, CacheTTL: time.Minute}, new(MockCache))
	require.NoError(t, err)
	assert.Equal(t, "stub+cache", gen.Name())

	_, err = NewTextGenerator(config.AIConfig{Backend: config.TextGeneratorGemini}, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	gen, err = NewTextGenerator(config.AIConfig{Backend: config.TextGeneratorGemini, APIKey: "k", Model: "gemini-pro"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "gemini:gemini-pro", gen.Name())

	_, err = NewTextGenerator(config.AIConfig{Backend: "openai"}, nil)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
