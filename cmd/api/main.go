package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/SoYuDev/petalth-crm/internal/adapters/auth/jwtauth"
	mem "github.com/SoYuDev/petalth-crm/internal/adapters/storage/memory"
	pg "github.com/SoYuDev/petalth-crm/internal/adapters/storage/postgres"
	"github.com/SoYuDev/petalth-crm/internal/config"
	"github.com/SoYuDev/petalth-crm/internal/platform/logger"
	"github.com/SoYuDev/petalth-crm/internal/router"
)

func main() {
	cfgPath := "config.yml"
	if v := os.Getenv("APP_CONFIG"); v != "" {
		cfgPath = v
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		// Logger aún sin configurar: salida directa.
		panic(err)
	}

	logger.Init("petalth-crm", cfg.Log.Env)

	opts := router.Options{
		JWT: jwtauth.Config{
			Secret: cfg.JWT.Secret,
			Expiry: cfg.TokenExpiry(),
		},
		Cors: cfg.Server.Cors,
	}

	if dsn := cfg.DSN(); dsn != "" {
		db, err := pg.Open(dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to postgres")
		}
		defer db.Close()
		opts.DB = db
		log.Info().Msg("storage: postgres")
	} else {
		store := mem.NewStore()
		if err := mem.SeedDemo(store); err != nil {
			log.Fatal().Err(err).Msg("cannot seed demo data")
		}
		opts.Store = store
		log.Info().Msg("storage: in-memory (dev mode, demo data seeded)")
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
