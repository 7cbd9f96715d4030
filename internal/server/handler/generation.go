package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/haojie06/openai-image-http/internal/logger"
	"github.com/haojie06/openai-image-http/internal/model"
	"github.com/haojie06/openai-image-http/internal/openai"
	"github.com/haojie06/openai-image-http/internal/page"
	"github.com/haojie06/openai-image-http/internal/utils"
)

const messageUpstreamUnavailable = "the image service could not be reached, please try again later"

type ImageGenerator interface {
	Generate(ctx context.Context, req model.ImageGenerationRequest) (openai.Result, error)
}

type GenerationHandler struct {
	generator ImageGenerator

	binding page.Binding
}

func NewGenerationHandler(generator ImageGenerator, binding page.Binding) *GenerationHandler {
	return &GenerationHandler{
		generator: generator,
		binding:   binding,
	}
}

func (h *GenerationHandler) Home(c *gin.Context) {
	name, status, view := h.binding.Home()
	c.HTML(status, name, view)
}

func (h *GenerationHandler) Generate(c *gin.Context) {
	log := logger.NewCustomLogger().With(utils.RequestIdKey, c.GetString(utils.RequestIdKey))

	var form model.GenerationForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		log.Warnf("rejected generation form: %s", err)
		utils.GinRejectForm(c, http.StatusBadRequest, form, utils.FormErrorMessage(err))
		return
	}
	input, err := form.Input()
	if err != nil {
		log.Warnf("rejected generation form: %s", err)
		utils.GinRejectForm(c, http.StatusBadRequest, form, utils.FormErrorMessage(err))
		return
	}

	log.Infof("generating %d image(s), size: %s, prompt: %s", input.N, input.Size, input.Prompt)
	// a client disconnect does not cancel the upstream call, the client timeout still applies
	ctx := context.WithoutCancel(c.Request.Context())
	result, err := h.generator.Generate(ctx, model.NewImageGenerationRequest(input))
	if err != nil {
		log.Errorf("image generation failed: %s", err)
		result = openai.Failure{Message: messageUpstreamUnavailable}
	}

	state := page.Reconcile(input, result)
	name, status, view := h.binding.Render(state)
	if status != http.StatusOK {
		log.Warnf("image generation returned an error page, status code: %d, error: %s", status, view.Error)
	}
	c.HTML(status, name, view)
}
