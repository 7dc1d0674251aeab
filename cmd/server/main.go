package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spellchecker/internal/app"
	"spellchecker/internal/config"
	"spellchecker/internal/customdict"
	"spellchecker/internal/scan"
	"spellchecker/internal/server"
)

func main() {
	envFile := flag.String("env-file", ".env", "optional file with environment defaults")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		store  app.WordStore
		custom server.CustomWords
	)
	if client := cfg.RedisClient(); client != nil {
		defer client.Close()
		cd := customdict.New(client)
		store, custom = cd, cd
	}

	dict, err := app.LoadDictionary(ctx, cfg.DictionaryPath, store, log.Default())
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.New(&scan.Checker{Dict: dict}, custom, log.Default()).Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
