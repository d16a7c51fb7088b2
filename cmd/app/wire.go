//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/faq-match/internal/bootstrap"
	"github.com/yanqian/faq-match/internal/domain/match"
	"github.com/yanqian/faq-match/internal/infra/config"
	httpiface "github.com/yanqian/faq-match/internal/interface/http"
	"github.com/yanqian/faq-match/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideMatchConfig,
		provideCounters,
		provideCorpus,
		provideStatsStore,
		match.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
