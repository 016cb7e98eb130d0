package ai

import (
	"github.com/pkoukk/tiktoken-go"
)

// estimateUsage approximates token counts with tiktoken for providers that do
// not report usage. OpenRouter model names (e.g. "anthropic/claude-3-haiku")
// are unknown to tiktoken, so cl100k_base is the fallback encoding.
func estimateUsage(model, prompt, completion string) UsageInfo {
	tke, err := tiktoken.EncodingForModel(model)
	if err != nil {
		tke, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return UsageInfo{}
		}
	}
	promptTokens := len(tke.Encode(prompt, nil, nil))
	completionTokens := len(tke.Encode(completion, nil, nil))
	return UsageInfo{
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
		Estimated:        true,
	}
}
