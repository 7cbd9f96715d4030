package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/haojie06/openai-image-http/internal/logger"
	"github.com/haojie06/openai-image-http/internal/model"
)

const DefaultEndpoint = "https://api.openai.com/v1/images/generations"

var (
	ErrMissingToken      = errors.New("no OpenAI token defined, set the OPENAI_TOKEN environment variable")
	ErrUpstreamTransport = errors.New("image generation request failed")
)

type Config struct {
	Token string `mapstructure:"token"`

	Endpoint string `mapstructure:"endpoint"`

	Timeout time.Duration `mapstructure:"timeout"`
}

// Validate is called once at startup, a missing token must stop the process.
func (c Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	return nil
}

type Client struct {
	config Config

	httpClient *http.Client

	logger *logger.CustomLogger
}

func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger.NewCustomLogger().With("component", "openai"),
	}, nil
}

// Generate issues a single POST to the images endpoint. Errors returned here are transport
// level failures wrapping ErrUpstreamTransport, an API error object is a Failure result.
func (c *Client) Generate(ctx context.Context, req model.ImageGenerationRequest) (Result, error) {
	requestBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %s", ErrUpstreamTransport, err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamTransport, err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+c.config.Token)

	start := time.Now()
	resp, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %s", ErrUpstreamTransport, err)
	}
	var generationResponse model.ImageGenerationResponse
	if err = json.Unmarshal(body, &generationResponse); err != nil {
		return nil, fmt.Errorf("%w: decode response, status code: %d: %s", ErrUpstreamTransport, resp.StatusCode, err)
	}
	c.logger.Debugf("images request finished, status code: %d, images: %d, took: %s", resp.StatusCode, len(generationResponse.Data), time.Since(start))
	return resultFromResponse(generationResponse), nil
}
