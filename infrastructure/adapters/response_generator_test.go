package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/viveknaskar/ConfessBot/application/ports/outbound"
	"github.com/viveknaskar/ConfessBot/config"
	"github.com/viveknaskar/ConfessBot/domain"
)

type fixedRandom struct {
	value int
}

func (f fixedRandom) Intn(n int) int {
	if f.value >= n {
		return n - 1
	}
	return f.value
}

func testGenerationConfig(url string) *config.GenerationConfig {
	return &config.GenerationConfig{
		ApiUrl:               url,
		ApiKey:               "test-key",
		Model:                "test-model",
		NarrationMaxTokens:   150,
		RoastMaxTokens:       100,
		NarrationTemperature: 0.8,
		RoastTemperature:     0.9,
	}
}

func testPersona() domain.Persona {
	return domain.DefaultPersonas()[0]
}

func TestResponseGenerator_RemoteSuccess(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("missing bearer credential on generation request")
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Error("Failed to decode generation request:", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  And so it goes.  "}}]}`))
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	generator := NewResponseGenerator(NewContentFetcher(logger), testGenerationConfig(server.URL), fixedRandom{}, logger)

	result, err := generator.Generate(context.Background(), outbound.GenerateResponseRequest{
		Confession: "I never rewind rental tapes",
		Persona:    testPersona(),
		Mode:       domain.NarrateMode,
	})
	if err != nil {
		t.Fatal("Failed to generate response:", err)
	}

	if result.Origin != domain.RemoteOrigin {
		t.Fatalf("expected remote origin, got %q", result.Origin)
	}
	if result.Text != "And so it goes." {
		t.Fatalf("expected trimmed completion text, got %q", result.Text)
	}
	if captured.MaxTokens != 150 || captured.Temperature != 0.8 {
		t.Fatalf("unexpected narration bounds: %d tokens, temperature %v", captured.MaxTokens, captured.Temperature)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Fatal("request must carry a system prompt followed by the user prompt")
	}
}

func TestResponseGenerator_RoastBounds(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Error("Failed to decode generation request:", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"roasted"}}]}`))
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	generator := NewResponseGenerator(NewContentFetcher(logger), testGenerationConfig(server.URL), fixedRandom{}, logger)

	if _, err := generator.Generate(context.Background(), outbound.GenerateResponseRequest{
		Confession: "I alphabetize my spice rack",
		Persona:    testPersona(),
		Mode:       domain.RoastMode,
	}); err != nil {
		t.Fatal("Failed to generate roast:", err)
	}

	if captured.MaxTokens != 100 || captured.Temperature != 0.9 {
		t.Fatalf("unexpected roast bounds: %d tokens, temperature %v", captured.MaxTokens, captured.Temperature)
	}
	if captured.Messages[0].Content != roastSystemPrompt {
		t.Fatal("roast must use the dedicated system prompt, not the persona prompt")
	}
}

func TestResponseGenerator_UpstreamFailureDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	generator := NewResponseGenerator(NewContentFetcher(logger), testGenerationConfig(server.URL), fixedRandom{value: 1}, logger)

	persona := testPersona()
	result, err := generator.Generate(context.Background(), outbound.GenerateResponseRequest{
		Confession: "I wave back at mannequins",
		Persona:    persona,
		Mode:       domain.NarrateMode,
	})
	if err != nil {
		t.Fatal("remote failure must be absorbed, got error:", err)
	}

	if result.Origin != domain.FallbackOrigin {
		t.Fatalf("expected fallback origin, got %q", result.Origin)
	}
	want := persona.Fallbacks[1]("I wave back at mannequins")
	if result.Text != want {
		t.Fatalf("expected fallback template %q, got %q", want, result.Text)
	}
}

func TestResponseGenerator_MalformedPayloadDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	generator := NewResponseGenerator(NewContentFetcher(logger), testGenerationConfig(server.URL), fixedRandom{}, logger)

	result, err := generator.Generate(context.Background(), outbound.GenerateResponseRequest{
		Confession: "I skip the intro",
		Persona:    testPersona(),
		Mode:       domain.NarrateMode,
	})
	if err != nil {
		t.Fatal("malformed payload must be absorbed, got error:", err)
	}
	if result.Origin != domain.FallbackOrigin {
		t.Fatalf("expected fallback origin, got %q", result.Origin)
	}
}

func TestResponseGenerator_NoCredentialSkipsRemoteCall(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	generationConfig := testGenerationConfig(server.URL)
	generationConfig.ApiKey = ""

	logger := NewZerologWrapper()
	generator := NewResponseGenerator(NewContentFetcher(logger), generationConfig, fixedRandom{}, logger)

	result, err := generator.Generate(context.Background(), outbound.GenerateResponseRequest{
		Confession: "I own eleven staplers",
		Persona:    testPersona(),
		Mode:       domain.RoastMode,
	})
	if err != nil {
		t.Fatal("missing credential must degrade, got error:", err)
	}

	if called {
		t.Fatal("no HTTP call may be made without a credential")
	}
	if result.Origin != domain.FallbackOrigin {
		t.Fatalf("expected fallback origin, got %q", result.Origin)
	}
	want := domain.RoastFallbacks()[0]("I own eleven staplers")
	if result.Text != want {
		t.Fatalf("expected roast fallback %q, got %q", want, result.Text)
	}
}
