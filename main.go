package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"genuine-checker/analyzer"
	"genuine-checker/config"
	"genuine-checker/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	a := analyzer.New(analyzer.Options{
		Vocabulary:   analyzer.DefaultVocabulary(),
		WhoisEnabled: cfg.WhoisEnabled,
		RDAPBaseURL:  cfg.RDAPBaseURL,
		ProbeTimeout: cfg.ProbeTimeout,
		DNSTimeout:   cfg.DNSTimeout,
		RDAPTimeout:  cfg.RDAPTimeout,
		WhoisTimeout: cfg.WhoisTimeout,
	}, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Outer deadline for one analysis; must cover the slowest check pair
	// (HEAD probe plus its GET fallback).
	r.Use(middleware.Timeout(15 * time.Second))

	r.Post("/check", analyzer.CheckHandler(a, log))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	fs := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))
	r.Get("/", analyzer.IndexHandler(cfg.StaticDir))

	log.Infof("genuine-checker listening on :%s", cfg.ListenPort)
	log.Info("endpoints",
		logger.String("check", "POST /check"),
		logger.String("index", "GET /"))

	if err := http.ListenAndServe(":"+cfg.ListenPort, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
