package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr      string
	Env           string
	InternalToken string
	LogoPath      string
	PDFWrapChunk  int
}

func MustLoad() Config {
	return Config{
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		Env:           env("APP_ENV", "prod"),
		InternalToken: env("INTERNAL_TOKEN", ""),
		LogoPath:      env("LOGO_PATH", "assets/tankar_logo.png"),
		PDFWrapChunk:  envInt("PDF_WRAP_CHUNK", 40),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
