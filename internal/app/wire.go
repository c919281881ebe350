package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amapara27/Horizon/internal/analysis"
	"github.com/amapara27/Horizon/internal/cache/redis"
	"github.com/amapara27/Horizon/internal/config"
	"github.com/amapara27/Horizon/internal/depth"
	"github.com/amapara27/Horizon/internal/news"
	"github.com/amapara27/Horizon/internal/platform/anthropic"
	"github.com/amapara27/Horizon/internal/platform/newsapi"
	"github.com/amapara27/Horizon/internal/platform/polymarket"
	"github.com/amapara27/Horizon/internal/sentiment"
	"github.com/amapara27/Horizon/internal/server"
	"github.com/amapara27/Horizon/internal/server/handler"
	"github.com/amapara27/Horizon/internal/wallet"
)

// Dependencies bundles everything the HTTP layer needs. It is constructed by
// Wire and torn down by the returned cleanup function.
type Dependencies struct {
	Handlers server.Handlers

	Gamma        *polymarket.GammaClient
	Clob         *polymarket.ClobClient
	Orchestrator *analysis.Orchestrator
}

// Wire constructs all concrete dependency implementations from the given
// configuration and returns them together with a cleanup function that should
// be called on shutdown to release resources.
func Wire(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	timeout := time.Duration(cfg.Polymarket.TimeoutSeconds) * time.Second

	// --- Market data clients ---
	gamma := polymarket.NewGammaClient(cfg.Polymarket.GammaHost, timeout)
	clob := polymarket.NewClobClient(cfg.Polymarket.ClobHost, timeout)

	// --- Optional Redis (news cache + upstream rate limiter) ---
	newsOpts := news.Options{
		Language:     cfg.News.Language,
		LookbackDays: cfg.News.LookbackDays,
		MaxResults:   cfg.News.PageSize,
	}
	if cfg.Redis.Enabled {
		redisClient, err := redis.New(ctx, redis.ClientConfig{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			PoolSize:   cfg.Redis.PoolSize,
			MaxRetries: cfg.Redis.MaxRetries,
			TLSEnabled: cfg.Redis.TLSEnabled,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("wire: redis: %w", err)
		}
		closers = append(closers, func() { _ = redisClient.Close() })

		newsTTL := time.Duration(cfg.Redis.NewsTTLMinutes) * time.Minute
		newsOpts.Cache = redis.NewNewsCache(redisClient, newsTTL)
		newsOpts.Limiter = redis.NewRateLimiter(redisClient, cfg.Redis.UpstreamPerMin, time.Minute)
	}

	// --- News retrieval ---
	newsClient := newsapi.New(cfg.News.BaseURL, cfg.News.APIKey, timeout)
	retriever := news.NewRetriever(newsClient, newsOpts, logger)

	// --- Sentiment analysis ---
	llm := anthropic.New(anthropic.Config{
		BaseURL:   cfg.Completion.BaseURL,
		APIKey:    cfg.Completion.APIKey,
		Model:     cfg.Completion.Model,
		MaxTokens: cfg.Completion.MaxTokens,
	})
	analyzer := sentiment.NewAnalyzer(llm, logger)

	// --- Wallet insight ---
	wallets, err := wallet.Select(cfg.Wallets.Provider, clob, cfg.Wallets.MaxWallets, logger)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("wire: wallet provider: %w", err)
	}

	// --- Aggregation and orchestration ---
	depthAgg := depth.NewAggregator(gamma, logger)
	bookAgg := depth.NewBookAggregator(clob, gamma, logger)
	catalog := analysis.NewCatalog(gamma, cfg.Polymarket.CryptoTagID, logger)
	orchestrator := analysis.New(gamma, depthAgg, retriever, analyzer, wallets, analysis.Options{
		TopOutcomes: cfg.Analysis.TopOutcomes,
		MaxOutcomes: cfg.Analysis.MaxOutcomes,
	}, logger)

	// --- HTTP handlers ---
	handlers := server.Handlers{
		Health:    handler.NewHealthHandler(logger),
		Events:    handler.NewEventsHandler(catalog, gamma, logger),
		Depth:     handler.NewDepthHandler(depthAgg, bookAgg, logger),
		News:      handler.NewNewsHandler(gamma, retriever, logger),
		Sentiment: handler.NewSentimentHandler(orchestrator, logger),
		Wallets:   handler.NewWalletsHandler(orchestrator, logger),
		Analysis:  handler.NewAnalysisHandler(orchestrator, logger),
	}

	deps := &Dependencies{
		Handlers:     handlers,
		Gamma:        gamma,
		Clob:         clob,
		Orchestrator: orchestrator,
	}
	return deps, cleanup, nil
}
