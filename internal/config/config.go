// Package config loads application configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultPort      = "8080"
	defaultPDFDir    = "./pdfs"
	defaultStaticDir = "./static"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port      string
	PDFDir    string
	StaticDir string

	// Path to the Chrome/Chromium binary used for PDF rendering; empty
	// means autodetect.
	ChromePath string

	// Selling-company identity shown on generated offers.
	CompanyName     string
	CompanyTelegram string
	CompanyPhone    string
	CompanyWhatsApp string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: local dev variables come from .env, production uses
	// real env injection.
	_ = godotenv.Load()

	cfg := Config{
		Port:            os.Getenv("PORT"),
		PDFDir:          os.Getenv("PDF_DIR"),
		StaticDir:       os.Getenv("STATIC_DIR"),
		ChromePath:      os.Getenv("CHROME_PATH"),
		CompanyName:     os.Getenv("COMPANY_NAME"),
		CompanyTelegram: os.Getenv("COMPANY_TELEGRAM"),
		CompanyPhone:    os.Getenv("COMPANY_PHONE"),
		CompanyWhatsApp: os.Getenv("COMPANY_WHATSAPP"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.PDFDir == "" {
		cfg.PDFDir = defaultPDFDir
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = defaultStaticDir
	}

	return cfg
}
