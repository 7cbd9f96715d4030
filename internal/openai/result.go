package openai

import "github.com/haojie06/openai-image-http/internal/model"

// Result is the outcome of one generation call, either Success or Failure.
type Result interface {
	isResult()
}

type Success struct {
	Lines []model.ResultLine
}

type Failure struct {
	Message string
}

func (Success) isResult() {}

func (Failure) isResult() {}

const (
	messageEmptyError   = "image generation failed without an error message"
	messageEmptyPayload = "image generation returned neither images nor an error"
)

// resultFromResponse maps the upstream body to a Result, an error object wins over data.
func resultFromResponse(resp model.ImageGenerationResponse) Result {
	if resp.Error != nil {
		if resp.Error.Message == "" {
			return Failure{Message: messageEmptyError}
		}
		return Failure{Message: resp.Error.Message}
	}
	if resp.Data == nil {
		return Failure{Message: messageEmptyPayload}
	}
	return Success{Lines: resp.Data}
}
