package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"textpay/internal/chain"
	"textpay/internal/config"
	"textpay/internal/core"
	"textpay/internal/custody"
	"textpay/internal/db"
	"textpay/internal/escrow"
	"textpay/internal/http/handler"
	"textpay/internal/http/handler/middleware"
	"textpay/internal/http/payload"
	"textpay/internal/http/server"
	"textpay/internal/intent"
	"textpay/internal/notify"
	"textpay/internal/ratelimit"
	"textpay/internal/repository"
	"textpay/internal/wallet"
	"textpay/pkg/jwt"
	"textpay/pkg/log"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

const confirmInterval = 15 * time.Second
const sweepInterval = time.Hour

func Start() error {
	logger := log.NewZapLogger("textpay", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	store := repository.NewStore(dbConn)

	err = store.MigrateAndSeed(ctx, config.AdminPasswordHash)
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// rate limiter
	counterStore, err := ratelimit.NewRedisStore(config.RedisURL)
	if err != nil {
		logger.Errorw("failed to connect to redis", "error", err)
		return err
	}
	limiter := ratelimit.NewLimiter(logger, counterStore, config.DailyMessageLimit)

	// chain
	client, err := ethclient.Dial(config.ChainRPCURL)
	if err != nil {
		logger.Errorw("chain node connection failed", "error", err)
		return err
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		logger.Errorw("failed to read chain id", "error", err)
		return err
	}

	operatorKey, err := crypto.HexToECDSA(strings.TrimPrefix(config.OperatorPrivateKey, "0x"))
	if err != nil {
		logger.Errorw("failed to parse operator key", "error", err)
		return err
	}

	escrowContract, err := chain.BindEscrow(client, config.EscrowAddress)
	if err != nil {
		logger.Errorw("failed to bind escrow contract", "error", err)
		return err
	}

	tokens, err := chain.BindTokens(client, config.TokenAddresses)
	if err != nil {
		logger.Errorw("failed to bind token contracts", "error", err)
		return err
	}

	vault := custody.NewVault(config.CustodyPassphrase)
	adapter := chain.NewAdapter(logger, chainID, vault, operatorKey, escrowContract, tokens)

	// domain services
	directory := wallet.NewDirectory(logger, store, vault, adapter)
	claimWindow := time.Duration(config.ClaimWindowDays) * 24 * time.Hour
	escrowManager := escrow.NewManager(logger, store, adapter, directory, claimWindow)
	parser := intent.NewParser(config.DefaultCountryCode)

	dispatcher := core.NewDispatcher(
		logger,
		limiter,
		parser,
		directory,
		escrowManager,
		adapter,
		store)

	admin := core.NewAdmin(logger, store, jwtService)

	// background workers
	notifier := notify.NewSender(logger, config.OutboundSenderURL)
	confirmer := chain.NewConfirmer(logger, client, store, notifier, confirmInterval)
	go confirmer.Run(ctx)
	go escrowManager.RunSweeper(ctx, sweepInterval)

	// handlers
	webhookHlr := handler.NewWebhookHandler(
		logger,
		payload.Decoder{},
		dispatcher,
		config.DefaultCountryCode)

	adminHlr := handler.NewAdminHandler(
		logger,
		payload.Decoder{},
		admin,
		limiter,
		jwtService)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.WhatsAppWebhook, webhookHlr.HandleWhatsApp)
	mux.HandleFunc(handler.SMSWebhook, webhookHlr.HandleSMS)
	mux.HandleFunc(handler.USSDWebhook, webhookHlr.HandleUSSD)
	mux.HandleFunc(handler.Authenticate, adminHlr.HandleAuthenticate)
	mux.HandleFunc(handler.GetStats, adminHlr.HandleStats)
	mux.HandleFunc(handler.ResetLimits, adminHlr.HandleResetLimits)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
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
