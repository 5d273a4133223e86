package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"gallerie/internal/app"
	"gallerie/internal/auth"
	"gallerie/internal/db"
	httpx "gallerie/internal/http"
	"gallerie/internal/store"
)

func main() {
	cfg := app.LoadConfig()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	d, err := db.Open(cfg.DatabasePath)
	app.Must(err)
	defer d.Close()
	app.Must(db.Migrate(d))

	st := store.New(d)
	sessions := auth.NewManager(d, cfg.SessionLifetime)

	srv := httpx.NewServer(st, sessions, cfg, logger)
	logger.Info().Str("addr", cfg.Addr).Msg("listening")
	app.Must(http.ListenAndServe(cfg.Addr, srv))
}
