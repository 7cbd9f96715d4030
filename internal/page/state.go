package page

import (
	"github.com/haojie06/openai-image-http/internal/model"
	"github.com/haojie06/openai-image-http/internal/openai"
)

// State is the data bound to the home template after a generation, either ErrorState or SuccessState.
type State interface {
	isState()
}

// ErrorState echoes the submitted form together with the upstream error message.
type ErrorState struct {
	Prompt string

	N int8

	Size model.Size

	Error string
}

// SuccessState echoes the submitted form together with the generated images.
type SuccessState struct {
	Prompt string

	N int8

	Size model.Size

	Data []model.ResultLine
}

func (ErrorState) isState() {}

func (SuccessState) isState() {}

const messageMalformedResult = "image generation returned an unexpected result"

// Reconcile is the only place that branches on the upstream outcome.
func Reconcile(input model.FormInput, result openai.Result) State {
	switch r := result.(type) {
	case openai.Success:
		return SuccessState{
			Prompt: input.Prompt,
			N:      input.N,
			Size:   input.Size,
			Data:   r.Lines,
		}
	case openai.Failure:
		return newErrorState(input, r.Message)
	default:
		return newErrorState(input, messageMalformedResult)
	}
}

func newErrorState(input model.FormInput, message string) ErrorState {
	return ErrorState{
		Prompt: input.Prompt,
		N:      input.N,
		Size:   input.Size,
		Error:  message,
	}
}
