package factory

import (
	"fmt"
	"time"

	"lecture-notes-be/pkg/llm"
	"lecture-notes-be/pkg/llm/gemini"
)

func NewProvider(providerType, modelName, apiKey string, timeout time.Duration) (llm.Provider, error) {
	switch providerType {
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("gemini provider requires GOOGLE_GEMINI_API_KEY")
		}
		return gemini.NewGeminiProvider(apiKey, modelName, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
