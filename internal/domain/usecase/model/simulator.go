package model

import (
	"encoding/json"
)

type prediction struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

type visionOutput struct {
	Predictions     []prediction `json:"predictions"`
	DetectedObjects []any        `json:"detected_objects"`
}

type languageOutput struct {
	GeneratedText string `json:"generated_text"`
	TokensUsed    int    `json:"tokens_used"`
}

type audioOutput struct {
	AudioURL string `json:"audio_url"`
	Duration int    `json:"duration"`
	Format   string `json:"format"`
}

type genericOutput struct {
	Result string `json:"result"`
}

// simulateOutput returns the canned response of a model category.
// No model is executed.
func simulateOutput(category string) (json.RawMessage, error) {
	var output any
	switch category {
	case "Computer Vision":
		output = visionOutput{
			Predictions: []prediction{
				{Class: "cat", Confidence: 0.94},
				{Class: "dog", Confidence: 0.06},
			},
			DetectedObjects: []any{},
		}
	case "Language":
		output = languageOutput{
			GeneratedText: "This is a simulated response from the language model based on your input.",
			TokensUsed:    45,
		}
	case "Audio":
		output = audioOutput{
			AudioURL: "/generated/audio_sample.wav",
			Duration: 30,
			Format:   "wav",
		}
	default:
		output = genericOutput{Result: "Inference completed successfully"}
	}

	return json.Marshal(output)
}
