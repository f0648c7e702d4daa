package module

import "assistant/internal/platform/config"

// Options holds credentials and model choices for the answer chain.
// Providers with empty keys are skipped at build time
type Options struct {
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
	WolframAppID string
	GoogleAPIKey string
	GoogleCSEID  string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	return Options{
		GeminiAPIKey: cfg.MayString("GEMINI_API_KEY", ""),
		GeminiModel:  cfg.MayString("GEMINI_MODEL", ""),
		OpenAIAPIKey: cfg.MayString("OPENAI_API_KEY", ""),
		OpenAIModel:  cfg.MayString("OPENAI_MODEL", ""),
		WolframAppID: cfg.MayString("WOLFRAM_ALPHA_APPID", ""),
		GoogleAPIKey: cfg.MayString("GOOGLE_API_KEY", ""),
		GoogleCSEID:  cfg.MayString("GOOGLE_CSE_ID", ""),
	}
}
