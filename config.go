package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/haojie06/openai-image-http/internal/openai"
	"github.com/haojie06/openai-image-http/internal/server"
	"github.com/spf13/viper"
)

type config struct {
	Server server.Config `mapstructure:"server"`

	OpenAI openai.Config `mapstructure:"openai"`
}

func loadConfig(v *viper.Viper) (serverConfig server.Config, openaiConfig openai.Config, err error) {
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.templates", "")
	v.SetDefault("server.pprof", false)
	v.SetDefault("server.upstreamErrorStatus", http.StatusBadGateway)
	v.SetDefault("openai.endpoint", openai.DefaultEndpoint)
	v.SetDefault("openai.timeout", 60*time.Second)
	if err = v.BindEnv("openai.token", "OPENAI_TOKEN"); err != nil {
		return
	}
	for key, env := range map[string]string{
		"server.host":     "HOST",
		"server.port":     "PORT",
		"openai.endpoint": "OPENAI_ENDPOINT",
	} {
		if err = v.BindEnv(key, env); err != nil {
			return
		}
	}

	// config.yaml is optional
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}
	// Unmarshal instead of UnmarshalKey, env only keys are skipped by the latter
	var c config
	if err = v.Unmarshal(&c); err != nil {
		return
	}
	return c.Server, c.OpenAI, nil
}
