package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"cartonquote/internal/assets"
	"cartonquote/internal/config"
	"cartonquote/internal/lookup"
	"cartonquote/internal/offer"
	"cartonquote/internal/quote"
	"cartonquote/internal/render"
)

type server struct {
	log       *zap.Logger
	generator *offer.Generator
	pdfDir    string
}

func main() {
	cfg := config.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := os.MkdirAll(cfg.PDFDir, 0o755); err != nil {
		log.Fatal("create pdf dir", zap.String("dir", cfg.PDFDir), zap.Error(err))
	}

	assembler := quote.NewAssembler(
		quote.CompanyInfo{
			Name:     cfg.CompanyName,
			Telegram: cfg.CompanyTelegram,
			Phone:    cfg.CompanyPhone,
			WhatsApp: cfg.CompanyWhatsApp,
		},
		quote.WithAssets(assets.LoadRefs(cfg.StaticDir)),
	)

	generator := offer.NewGenerator(
		log,
		lookup.MockProvider{},
		assembler,
		&render.PDFRenderer{ChromePath: cfg.ChromePath},
	)

	srv := &server{log: log, generator: generator, pdfDir: cfg.PDFDir}

	r := chi.NewRouter()
	r.Get("/api/health", srv.handleHealth)
	r.Post("/api/quote", srv.handleQuote)
	r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(cfg.PDFDir))))

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
