package server

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/haojie06/openai-image-http/internal/logger"
	"github.com/haojie06/openai-image-http/internal/page"
	"github.com/haojie06/openai-image-http/internal/server/handler"
	"github.com/haojie06/openai-image-http/internal/utils"
)

const shutdownTimeout = 5 * time.Second

type Config struct {
	Host string `mapstructure:"host"`

	Port string `mapstructure:"port"`

	Templates string `mapstructure:"templates"` // directory with home.html, embedded templates when empty

	Pprof bool `mapstructure:"pprof"`

	UpstreamErrorStatus int `mapstructure:"upstreamErrorStatus"`
}

// Start serves until ctx is done, then drains in-flight requests.
func Start(ctx context.Context, config Config, generator handler.ImageGenerator) error {
	srv := &http.Server{
		Addr:    config.Host + ":" + config.Port,
		Handler: InitRouter(config, generator),
	}
	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}
	logger.Infof("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := uuid.New().String()
		c.Set(utils.RequestIdKey, requestId)
		c.Header("X-Request-Id", requestId)
		c.Next()
	}
}

func InitRouter(config Config, generator handler.ImageGenerator) *gin.Engine {
	router := gin.New()
	router.Use(ginzap.RecoveryWithZap(logger.ZapLogger, true))
	router.Use(ginzap.Ginzap(logger.ZapLogger, time.RFC3339Nano, true))
	router.Use(cors.Default())
	router.Use(RequestIdMiddleware())
	if config.Pprof {
		pprof.Register(router)
	}
	if config.Templates != "" {
		router.LoadHTMLGlob(filepath.Join(config.Templates, "*.html"))
	} else {
		router.SetHTMLTemplate(embeddedTemplates())
	}

	generationHandler := handler.NewGenerationHandler(generator, page.NewBinding(config.UpstreamErrorStatus))
	router.GET("/", generationHandler.Home)
	router.POST("/generate", generationHandler.Generate)
	router.POST("/openai", generationHandler.Generate)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}
