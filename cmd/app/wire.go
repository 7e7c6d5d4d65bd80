//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/fitr-app/fitr-backend/internal/bootstrap"
	"github.com/fitr-app/fitr-backend/internal/domain/outfit"
	"github.com/fitr-app/fitr-backend/internal/infra/config"
	"github.com/fitr-app/fitr-backend/internal/infra/llm/chatgpt"
	"github.com/fitr-app/fitr-backend/internal/infra/oracle"
	httpiface "github.com/fitr-app/fitr-backend/internal/interface/http"
	"github.com/fitr-app/fitr-backend/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideOutfitConfig,
		provideOracleConfig,
		provideChatGPTClient,
		oracle.NewAdapter,
		outfit.NewService,
		provideWeatherProvider,
		provideWardrobeRepository,
		provideOutfitHistory,
		provideOutfitCache,
		wire.Bind(new(oracle.ChatClient), new(*chatgpt.Client)),
		wire.Bind(new(outfit.Oracle), new(*oracle.Adapter)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
