package factory

import (
	"testing"

	"github.com/openquant/vega/internal/config"
)

func TestNew_DefaultsToCanned(t *testing.T) {
	p, err := New(config.LLMConfig{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p.Name() != "canned" {
		t.Errorf("expected canned provider, got %s", p.Name())
	}
}

func TestNew_Claude(t *testing.T) {
	p, err := New(config.LLMConfig{
		Provider: "claude",
		Claude:   config.ClaudeConfig{APIKey: "sk-test"},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p.Name() != "claude" {
		t.Errorf("expected claude provider, got %s", p.Name())
	}
}

func TestNew_ClaudeWithoutKey(t *testing.T) {
	if _, err := New(config.LLMConfig{Provider: "claude"}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestNew_OpenAI(t *testing.T) {
	p, err := New(config.LLMConfig{
		Provider: "openai",
		OpenAI:   config.OpenAIConfig{APIKey: "sk-test"},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("expected openai provider, got %s", p.Name())
	}
}

func TestNew_Unknown(t *testing.T) {
	if _, err := New(config.LLMConfig{Provider: "gemini"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}
