package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"resistcalc.circuitbench.org/internal/app"
	"resistcalc.circuitbench.org/internal/eseries"
	"resistcalc.circuitbench.org/internal/logging"
	"resistcalc.circuitbench.org/internal/restapi"
)

func main() {
	var cfg app.Config
	var apiKeysFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second allowed per API key (negative disables limiting)")
	flag.Float64Var(&cfg.GridMinKOhm, "grid-min", eseries.DefaultMinKOhm, "Lower bound of the standard-value grid in kOhm")
	flag.Float64Var(&cfg.GridMaxKOhm, "grid-max", eseries.DefaultMaxKOhm, "Upper bound of the standard-value grid in kOhm")
	flag.IntVar(&cfg.DefaultTopN, "top-n", 5, "Default number of ranked candidates returned by solve")
	flag.Parse()

	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	api := restapi.NewRestAPI(&app.Application{
		Config: cfg,
		Logger: logger,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Router(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err := srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
