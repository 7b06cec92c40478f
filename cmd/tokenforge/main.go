package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/core-coin/tokenforge/internal/blockchain"
	"github.com/core-coin/tokenforge/internal/config"
	"github.com/core-coin/tokenforge/internal/forge"
	"github.com/core-coin/tokenforge/internal/http_api"
	"github.com/core-coin/tokenforge/internal/models"
	"github.com/core-coin/tokenforge/internal/notificator"
	"github.com/core-coin/tokenforge/internal/tokenapi"
	"github.com/core-coin/tokenforge/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "tokenforge",
		Usage: "Item list and token creation service",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "API port"},
			&cli.StringFlag{Name: "token-api-url", Aliases: []string{"a"}, Usage: "Token creation API base URL"},
			&cli.StringFlag{Name: "wallet-provider-url", Aliases: []string{"w"}, Usage: "Core node RPC URL used as wallet provider"},
			&cli.BoolFlag{Name: "fixed-decimals", Usage: "Fix token decimals to 18"},
			&cli.BoolFlag{Name: "image-required", Usage: "Require a token image"},
			&cli.BoolFlag{Name: "development", Aliases: []string{"D"}, Usage: "Development mode"},
		},
		Action: func(c *cli.Context) error {
			return run(c)
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	// Load configuration from environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	// Override with flags if set
	if c.IsSet("port") {
		cfg.APIPort = c.Int("port")
	}
	if c.IsSet("token-api-url") {
		cfg.TokenAPIURL = c.String("token-api-url")
	}
	if c.IsSet("wallet-provider-url") {
		cfg.WalletProviderURL = c.String("wallet-provider-url")
	}
	if c.IsSet("fixed-decimals") {
		cfg.FixedDecimals = c.Bool("fixed-decimals")
	}
	if c.IsSet("image-required") {
		cfg.ImageRequired = c.Bool("image-required")
	}
	if c.IsSet("development") {
		cfg.Development = c.Bool("development")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %v", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Development)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}
	defer log.Sync()

	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.TokenAPIURL == "" {
		log.Error("TOKEN_API_URL is not set; token submissions will fail until it is configured")
	}

	// Initialize notification mirrors
	var mirrors []notificator.Mirror
	if cfg.TelegramEnabled() {
		telegram, err := notificator.NewTelegramNotificator(log, cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			return err
		}
		mirrors = append(mirrors, telegram)
	}
	if cfg.EmailEnabled() {
		mirrors = append(mirrors, notificator.NewEmailNotificator(log, cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPSender, cfg.SMTPRecipient))
	}
	notifications := notificator.NewNotificator(log, cfg.NotificationWindow, mirrors...)

	// Initialize wallet provider; without a URL no wallet is available
	var provider models.WalletProvider
	if cfg.WalletProviderURL != "" {
		gocore := blockchain.NewGocore(cfg.WalletProviderURL, log)
		defer gocore.Close()
		provider = gocore
	} else {
		log.Warn("WALLET_PROVIDER_URL is not set; wallet connections will fail")
	}

	tokenAPI := tokenapi.NewClient(cfg.TokenAPIURL, cfg.TokenAPITimeout, log)

	forgeApp := forge.NewForge(provider, tokenAPI, notifications, models.FormVariant{
		FixedDecimals: cfg.FixedDecimals,
		ImageRequired: cfg.ImageRequired,
	}, cfg.MaxImageBytes, log)
	defer forgeApp.Close()

	apiServer := http_api.NewHTTPServer(forgeApp, cfg, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- apiServer.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("Received signal, shutting down", "signal", sig.String())
	}

	return apiServer.Shutdown()
}
