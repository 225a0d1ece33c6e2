package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/arbazmubasher1/HygieneChecklist/app"
	"github.com/arbazmubasher1/HygieneChecklist/config"
	"github.com/arbazmubasher1/HygieneChecklist/httpx"
	"github.com/arbazmubasher1/HygieneChecklist/imgbb"
	"github.com/arbazmubasher1/HygieneChecklist/log"
	"github.com/arbazmubasher1/HygieneChecklist/routes"
	"github.com/arbazmubasher1/HygieneChecklist/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := store.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	bearerServer := httpx.NewBearerServer(db.DB(), cfg)

	app := app.App{
		Store:        db,
		Uploader:     imgbb.NewClient(cfg.ImgBBKey, cfg.ImgBBTimeout),
		BearerServer: bearerServer,
		Config:       cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
