package config

import (
	"os"
	"strconv"
	"time"

	"github.com/airhart/airport-api/internal/util"
)

type Config struct {
	DatabaseDSN     string
	Addr            string
	CacheURL        string
	MQURL           string
	JWTSecret       string
	FlightsCacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}
	databaseDSN := os.Getenv("DATABASE_DSN")
	addr := os.Getenv("ADDR")
	cacheURL := os.Getenv("CACHE_URL")
	mqURL := os.Getenv("RABBIT_MQ_URL")
	jwtSecret := os.Getenv("JWT_SECRET")

	cacheTTL := 30 * time.Second
	if v := os.Getenv("FLIGHTS_CACHE_TTL_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cacheTTL = time.Duration(seconds) * time.Second
		}
	}

	return &Config{
		DatabaseDSN:     databaseDSN,
		Addr:            addr,
		CacheURL:        cacheURL,
		MQURL:           mqURL,
		JWTSecret:       jwtSecret,
		FlightsCacheTTL: cacheTTL,
	}, nil
}
