package main

import (
	"os"
	"strconv"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvSeconds(key string, fallback float64) time.Duration {
	secs := fallback
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			secs = f
		}
	}
	return time.Duration(secs * float64(time.Second))
}

// loadDispatchConfig monta a configuração do motor de envio.
// Defaults: delay 2–5s, 100 emails/dia, 3 tentativas, 15s por envio.
func loadDispatchConfig() usecase.DispatchConfig {
	return usecase.DispatchConfig{
		DailyLimit:  getEnvInt("DAILY_SEND_LIMIT", 100),
		MaxRetries:  getEnvInt("MAX_RETRIES", 3),
		DelayMin:    getEnvSeconds("SEND_DELAY_MIN", 2),
		DelayMax:    getEnvSeconds("SEND_DELAY_MAX", 5),
		SendTimeout: getEnvSeconds("SEND_TIMEOUT", 15),
	}
}
