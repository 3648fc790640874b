package llm

import (
	"strings"
	"testing"
)

func TestNewClient(t *testing.T) {
	for _, provider := range []string{ProviderOpenAI, ProviderAnthropic, ProviderGemini, ProviderCerebras} {
		client, err := NewClient(provider, "test-key", TierBalanced)
		if err != nil {
			t.Errorf("%s with key: %v", provider, err)
		}
		if client == nil {
			t.Errorf("%s with key: nil client", provider)
		}

		if _, err := NewClient(provider, "", TierBalanced); err == nil {
			t.Errorf("%s without key: expected an error", provider)
		}
	}
}

func TestNewClient_Mock(t *testing.T) {
	client, err := NewClient(ProviderMock, "", TierFast)
	if err != nil {
		t.Fatalf("mock provider needs no key: %v", err)
	}
	if client == nil {
		t.Fatal("nil client")
	}
}

func TestNewClient_Unknown(t *testing.T) {
	_, err := NewClient("palm", "key", TierBalanced)
	if err == nil {
		t.Fatal("expected an error for an unknown provider")
	}
	if !strings.Contains(err.Error(), "unknown LLM provider") {
		t.Errorf("error = %v", err)
	}
}
