package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/LevanSamadashvili/BitcoinWallet/app/config"
	"github.com/LevanSamadashvili/BitcoinWallet/app/core"
	"github.com/LevanSamadashvili/BitcoinWallet/app/server"
	"github.com/LevanSamadashvili/BitcoinWallet/app/storage"
	"github.com/LevanSamadashvili/BitcoinWallet/app/storage/database"
	"github.com/LevanSamadashvili/BitcoinWallet/app/storage/memory"
	"github.com/LevanSamadashvili/BitcoinWallet/app/strategies"
	"github.com/LevanSamadashvili/BitcoinWallet/pkg/log"
	"github.com/LevanSamadashvili/BitcoinWallet/pkg/web"
	webware "github.com/LevanSamadashvili/BitcoinWallet/pkg/web/middleware"
)

const (
	maxRequestsAllowed    = 10000
	serverShutdownTimeout = 30 * time.Second
)

type stores struct {
	users        storage.UserStore
	wallets      storage.WalletStore
	transactions storage.TransactionStore
	statistics   storage.StatisticsStore
}

func main() {
	cfg, err := config.Parse()
	if err != nil {
		panic(err)
	}

	zlog := log.ConfigureLogger(cfg.Logging)
	defer func() {
		_ = zlog.Sync() // flush the logger
	}()

	st, cleanup := connectStorage(cfg)
	defer cleanup()

	converter := strategies.NewConverter(cfg.Rates)
	coreSvc := &core.Manager{
		Users:        st.users,
		Wallets:      st.wallets,
		Transactions: st.transactions,
		Statistics:   st.statistics,
		Strategies: core.Strategies{
			GenerateAPIKey:  strategies.KsuidAPIKeyGenerator,
			GenerateAddress: strategies.RandomAddressGenerator,
			BTCToUSD:        converter.BTCToUSD,
			TransactionFee:  strategies.PercentageFee(cfg.Fees.FeePercent()),
		},
		AdminAPIKey: cfg.Admin.APIKey,
	}

	router := newRouter()
	rest := server.Rest{
		Router: router,
		Core:   coreSvc,
	}
	rest.Route() // handle http requests

	// start an http server and remember to shut it down
	srv := &http.Server{
		Addr:    cfg.RestAddr,
		Handler: router,
	}
	go web.Start(srv)
	defer web.Shutdown(srv, serverShutdownTimeout)

	// wait for the program exit
	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)
	<-exit
}

func connectStorage(cfg *config.Config) (stores, func()) {
	if cfg.Storage == config.StoragePostgres {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			log.Fatal(err)
		}
		cleanup := func() {
			_ = db.Close()
		}
		return stores{users: db, wallets: db, transactions: db, statistics: db}, cleanup
	}

	log.Warn("no database configured, the ledger is kept in memory")
	mem := memory.NewMemory()
	return stores{users: mem, wallets: mem, transactions: mem, statistics: mem}, func() {}
}

func newRouter() chi.Router {
	router := chi.NewRouter()

	// add middleware
	router.Use(
		middleware.Throttle(maxRequestsAllowed),
		middleware.RealIP,
		webware.ZapLogger,
		webware.Recoverer,
	)

	return router
}
