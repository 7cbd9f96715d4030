package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/haojie06/openai-image-http/internal/model"
	"github.com/haojie06/openai-image-http/internal/page"
)

const RequestIdKey = "requestId"

// GinRejectForm redisplays the form with a message, the upstream is not called.
func GinRejectForm(c *gin.Context, status int, form model.GenerationForm, message string) {
	c.HTML(status, page.HomeTemplate, page.Rejected(form, message))
}
