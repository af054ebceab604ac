package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/airhart/airport-api/internal/model"
)

var ctx = context.Background()

const flightsKey = "cache:flights"

type RedisCache struct {
	Client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(url string, flightsTTL time.Duration) (*RedisCache, error) {
	client := redis.NewClient(
		&redis.Options{
			Addr:     url,
			Password: "",
			DB:       0,
		},
	)
	redisCache := &RedisCache{
		Client:     client,
		flightsTTL: flightsTTL,
	}

	return redisCache, nil
}

func (r *RedisCache) Set(key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisCache) Get(key string, dest any) error {
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

/*
* unfiltered flight list with availability
 */

// GetFlights returns nil, nil on a cache miss.
func (r *RedisCache) GetFlights() ([]model.FlightSummary, error) {
	var flights []model.FlightSummary
	if err := r.Get(flightsKey, &flights); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return flights, nil
}

func (r *RedisCache) SetFlights(flights []model.FlightSummary) error {
	return r.Set(flightsKey, flights, r.flightsTTL)
}

// InvalidateFlights drops the cached list. Called after any write that
// changes flights or their availability: tickets_available goes stale
// the moment an order commits.
func (r *RedisCache) InvalidateFlights() error {
	return r.Client.Del(ctx, flightsKey).Err()
}
