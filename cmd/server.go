package cmd

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/config"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/core"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/db"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/ethereum"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/handler"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/handler/middleware"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/payload"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/http/server"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/metrics"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/rate"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/repository"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/scheduler"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/internal/signature"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/pkg/jwt"
	"github.com/KaweewatN/decentralized-insurance-platform-sub000/pkg/log"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

const (
	serviceName = "insurance-relay"
	jobTimeout  = 20 * time.Second
	pruneSpec   = "@every 5m"
)

func Start() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	app, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var logger *zap.SugaredLogger
	if app.LogFile != "" {
		logger = log.NewZapFileLogger(serviceName, app.LogLevel, app.LogFile)
	} else {
		logger = log.NewZapLogger(serviceName, app.LogLevel)
	}
	defer logger.Sync()

	dbConn, err := db.NewPostgresDB(app.DBConnectionURL, logger)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	repo := repository.NewInsuranceRepository(dbConn)
	if err = repo.MigrateAndSeed(context.Background()); err != nil {
		logger.Errorw("failed to prepare database", "error", err)
		return err
	}

	client, err := ethclient.Dial(app.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}
	defer client.Close()

	chainID := big.NewInt(app.ChainID)
	if app.ChainID == 0 {
		if chainID, err = client.NetworkID(context.Background()); err != nil {
			logger.Errorw("failed to read chain id", "error", err)
			return err
		}
	}

	signer, err := signature.NewAdminSigner(app.AdminPrivateKey, chainID, app.ContractAddress)
	if err != nil {
		logger.Errorw("failed to load admin key", "error", err)
		return err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(signer.PrivateKey(), chainID)
	if err != nil {
		logger.Errorw("failed to create relayer", "error", err)
		return err
	}

	bound, err := ethereum.NewInsuranceContract(app.ContractAddress, client)
	if err != nil {
		logger.Errorw("failed to bind insurance contract", "error", err)
		return err
	}
	contract := ethereum.NewContractService(bound, client, opts, app.VaultAddress)
	ethService := ethereum.NewEthService(client)

	rates, err := newRateService(logger, app)
	if err != nil {
		logger.Errorw("failed to create rate service", "error", err)
		return err
	}

	jwtService := jwt.NewJWTService([]byte(app.JWTSecret))

	insurance := core.NewInsurance(
		logger,
		repo,
		jwtService,
		ethService,
		contract,
		signer,
		rates)

	insuranceHdlr := handler.NewInsuranceHandler(
		logger,
		payload.DecodeValidator{},
		insurance,
		rates,
		dbConn)

	// middleware
	mux := http.NewServeMux()
	limiter := middleware.NewRateLimiter(logger, app.RateLimitRPS, app.RateLimitBurst)
	hdlr := limiter.RateLimit(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	auth := middleware.NewAuthMiddleware(logger, jwtService)
	insuranceHdlr.Register(mux, auth.Authenticate, metrics.Handler())

	// background jobs
	jobs := scheduler.New(logger, jobTimeout)
	for _, j := range []struct {
		name, spec string
		job        scheduler.Job
	}{
		{"rate-warmer", app.RateRefreshSchedule, scheduler.RateWarmer(rates)},
		{"mirror-sync", app.SyncSchedule, scheduler.MirrorSync(insurance)},
		{"limiter-prune", pruneSpec, scheduler.LimiterPrune(logger, limiter)},
	} {
		if err = jobs.Add(j.name, j.spec, j.job); err != nil {
			logger.Errorw("failed to schedule job", "error", err)
			return err
		}
	}
	jobs.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if err := jobs.Stop(ctx); err != nil {
			logger.Warnw("background jobs did not stop in time", "error", err)
		}
	}()

	srv := server.NewHTTP(logger, hdlr, app.Port)
	return run(srv)
}

func newRateService(logger *zap.SugaredLogger, app config.App) (*rate.Service, error) {
	var cache rate.Cache = rate.NewMemoryCache()
	if app.RedisURL != "" {
		client, err := rate.NewRedisClient(app.RedisURL)
		if err != nil {
			return nil, err
		}
		// keep the last known rate around long after it goes stale
		cache = rate.NewRedisCache(client, rate.DefaultRedisKey, 24*app.RateCacheTTL)
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}
	return rate.NewService(
		logger,
		cache,
		app.RateCacheTTL,
		app.RateFallbackTHB,
		rate.NewCoinbaseSource(httpClient, app.CoinbaseURL),
		rate.NewBitkubSource(httpClient, app.BitkubURL),
		rate.NewBinanceSource(httpClient, app.BinanceURL, app.FXURL),
	), nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
