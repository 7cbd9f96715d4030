package model

// GenerationForm is the raw body of POST /generate.
type GenerationForm struct {
	Prompt string `form:"prompt"`

	N int8 `form:"n" binding:"required"`

	Size string `form:"size" binding:"required"`
}

// FormInput is a validated generation form.
type FormInput struct {
	Prompt string

	N int8

	Size Size
}

// Input validates the raw form. Only the size token needs decoding, the rest was coerced by binding.
func (f GenerationForm) Input() (FormInput, error) {
	size, err := ParseSize(f.Size)
	if err != nil {
		return FormInput{}, err
	}
	return FormInput{
		Prompt: f.Prompt,
		N:      f.N,
		Size:   size,
	}, nil
}

// ImageGenerationRequest is the body sent to the upstream images API.
type ImageGenerationRequest struct {
	Prompt string `json:"prompt"`

	N int8 `json:"n"`

	Size Size `json:"size"` // marshalled as 256x256, 512x512, 1024x1024
}

func NewImageGenerationRequest(input FormInput) ImageGenerationRequest {
	return ImageGenerationRequest{
		Prompt: input.Prompt,
		N:      input.N,
		Size:   input.Size,
	}
}

type ResultLine struct {
	URL string `json:"url"`
}

// ImageGenerationResponse is the upstream body, exactly one of Data and Error is expected.
type ImageGenerationResponse struct {
	Data []ResultLine `json:"data"`

	Error *ImageGenerationError `json:"error"`
}

type ImageGenerationError struct {
	Message string `json:"message"`

	Type string `json:"type"`
}
