package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/EigenExplorer/liquid-avs-token/internal/audit"
	"github.com/EigenExplorer/liquid-avs-token/internal/capability"
	"github.com/EigenExplorer/liquid-avs-token/internal/clock"
	"github.com/EigenExplorer/liquid-avs-token/internal/ledger"
	"github.com/EigenExplorer/liquid-avs-token/internal/metrics"
	"github.com/EigenExplorer/liquid-avs-token/internal/model"
	"github.com/EigenExplorer/liquid-avs-token/internal/redemption"
	"github.com/EigenExplorer/liquid-avs-token/internal/registry"
	chrepository "github.com/EigenExplorer/liquid-avs-token/internal/repository/clickhouse"
	"github.com/EigenExplorer/liquid-avs-token/internal/staking"
	"github.com/EigenExplorer/liquid-avs-token/internal/store"
	"github.com/EigenExplorer/liquid-avs-token/internal/transport"
	"github.com/EigenExplorer/liquid-avs-token/internal/valuation"
	"github.com/EigenExplorer/liquid-avs-token/internal/withdrawal"
	"github.com/EigenExplorer/liquid-avs-token/pkg/batcher"
)

var config struct {
	Addr            string        `long:"addr" env:"SETTLEMENTD_ADDR" description:"http listen address" default:":8000"`
	DataDir         string        `long:"data-dir" env:"SETTLEMENTD_DATA_DIR" description:"badger data directory" default:"./data"`
	GatewayURL      string        `long:"gateway-url" env:"SETTLEMENTD_GATEWAY_URL" description:"restaking gateway base url" default:"http://localhost:9000"`
	GatewayTimeout  time.Duration `long:"gateway-timeout" env:"SETTLEMENTD_GATEWAY_TIMEOUT" description:"per-call gateway timeout" default:"30s"`
	GatewayRPS      int           `long:"gateway-rps" env:"SETTLEMENTD_GATEWAY_RPS" description:"gateway requests per second" default:"10"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"SETTLEMENTD_CLICKHOUSE_DSN" description:"audit event store dsn, empty disables auditing"`
	WithdrawalDelay time.Duration `long:"withdrawal-delay" env:"SETTLEMENTD_WITHDRAWAL_DELAY" description:"minimum delay before fulfillment" default:"336h"`
	Workers         int           `long:"workers" env:"SETTLEMENTD_WORKERS" description:"concurrent external protocol calls" default:"4"`
	NodeCap         int           `long:"node-cap" env:"SETTLEMENTD_NODE_CAP" description:"maximum node count" default:"16"`
	Assets          []string      `long:"asset" env:"SETTLEMENTD_ASSETS" env-delim:"," description:"asset as id:decimals:price[:volatility]"`
	Admins          []string      `long:"admin" env:"SETTLEMENTD_ADMINS" env-delim:"," description:"callers granted registry management"`
	Operators       []string      `long:"operator" env:"SETTLEMENTD_OPERATORS" env-delim:"," description:"callers granted settlement and completion"`
	Users           []string      `long:"user" env:"SETTLEMENTD_USERS" env-delim:"," description:"callers granted withdrawal creation"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	assets, err := parseAssets(config.Assets)
	if err != nil {
		logger.Fatal("Failed to parse assets", zap.Error(err))
	}
	if len(assets) == 0 {
		logger.Fatal("At least one --asset is required")
	}

	caps := capability.NewTable()
	for _, caller := range config.Admins {
		caps.Grant(caller, capability.RegistryManage)
	}
	for _, caller := range config.Operators {
		caps.Grant(caller, capability.SettlementExecute, capability.RedemptionComplete)
	}
	for _, caller := range config.Users {
		caps.Grant(caller, capability.WithdrawalCreate)
	}

	gateway, err := staking.NewClient(config.GatewayURL, config.GatewayTimeout, logger)
	if err != nil {
		logger.Fatal("Failed to build gateway client", zap.Error(err))
	}
	protocol := staking.NewRateLimited(gateway, config.GatewayRPS)

	reg := registry.New(logger, caps, protocol, config.NodeCap)

	led := ledger.New(logger, gateway, protocol, reg, metrics.NewLedger())
	oracle, err := valuation.NewFixedOracle(assets...)
	if err != nil {
		logger.Fatal("Failed to build oracle", zap.Error(err))
	}
	for _, asset := range assets {
		if err := led.RegisterAsset(asset); err != nil {
			logger.Fatal("Failed to register asset", zap.Error(err))
		}
	}

	st, err := store.Open(config.DataDir)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("Failed to close store", zap.Error(err))
		}
	}()

	var recorder audit.Events = audit.NopRecorder{}
	if config.ClickhouseDSN != "" {
		repo, err := chrepository.NewRepository(config.ClickhouseDSN, metrics.NewRepository())
		if err != nil {
			logger.Fatal("Failed to connect to clickhouse", zap.Error(err))
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("Failed to close clickhouse connection", zap.Error(err))
			}
		}()
		rec := audit.NewRecorder(logger, repo, batcher.Config{})
		rec.Start(ctx)
		defer rec.Close()
		recorder = rec
	}

	queue := withdrawal.New(logger, clock.System{}, caps, st, led, gateway, gateway,
		metrics.NewWithdrawal(), recorder, withdrawal.Config{Delay: config.WithdrawalDelay})
	engine := redemption.NewEngine(logger, clock.System{}, caps, queue, led, protocol, reg, st,
		metrics.NewRedemption(), recorder, redemption.Config{Workers: config.Workers})

	requests, err := st.Requests()
	if err != nil {
		logger.Fatal("Failed to load requests", zap.Error(err))
	}
	nonces, err := st.Nonces()
	if err != nil {
		logger.Fatal("Failed to load nonces", zap.Error(err))
	}
	queue.Load(requests, nonces)

	redemptions, err := st.Redemptions()
	if err != nil {
		logger.Fatal("Failed to load redemptions", zap.Error(err))
	}
	engine.Load(redemptions)
	logger.Info("State loaded",
		zap.Int("requests", len(requests)),
		zap.Int("redemptions", len(redemptions)))

	for _, asset := range led.Assets() {
		if err := led.Reconcile(ctx, asset); err != nil {
			logger.Warn("Startup reconciliation failed",
				zap.String("asset", string(asset)),
				zap.Error(err))
		}
	}

	handler := transport.NewHandler(logger, queue, engine, reg, led, oracle)
	router := handler.Router()
	router.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

// parseAssets decodes id:decimals:price[:volatility] asset flags.
func parseAssets(raw []string) ([]model.Asset, error) {
	assets := make([]model.Asset, 0, len(raw))
	for _, entry := range raw {
		parts := strings.Split(entry, ":")
		if len(parts) < 3 || len(parts) > 4 {
			return nil, fmt.Errorf("asset %q: want id:decimals:price[:volatility]", entry)
		}
		decimals, err := strconv.ParseUint(parts[1], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("asset %q decimals: %w", entry, err)
		}
		price, err := decimal.NewFromString(parts[2])
		if err != nil {
			return nil, fmt.Errorf("asset %q price: %w", entry, err)
		}
		volatility := decimal.Zero
		if len(parts) == 4 {
			volatility, err = decimal.NewFromString(parts[3])
			if err != nil {
				return nil, fmt.Errorf("asset %q volatility: %w", entry, err)
			}
		}
		assets = append(assets, model.Asset{
			ID:                  model.AssetID(parts[0]),
			Decimals:            uint8(decimals),
			Price:               price,
			VolatilityThreshold: volatility,
		})
	}
	return assets, nil
}
