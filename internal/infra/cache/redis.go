package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CulturalTours/internal/config"
	"github.com/m04kA/SMC-CulturalTours/internal/domain"
)

const placesKeyPrefix = "cache:places:"

// PlacesCache кэш публичного списка направлений в Redis
type PlacesCache struct {
	client    redis.UniversalClient
	placesTTL time.Duration
}

// NewPlacesCache создает клиент Redis по конфигурации
func NewPlacesCache(cfg config.CacheConfig) *PlacesCache {
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	return NewPlacesCacheWithClient(client, time.Duration(cfg.PlacesTTL)*time.Second)
}

// NewPlacesCacheWithClient использует готовый клиент
func NewPlacesCacheWithClient(client redis.UniversalClient, ttl time.Duration) *PlacesCache {
	return &PlacesCache{client: client, placesTTL: ttl}
}

// Ping проверяет доступность Redis
func (c *PlacesCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// GetPlaces возвращает закэшированный список направлений
// Второе значение false, если записи в кэше нет
func (c *PlacesCache) GetPlaces(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, bool, error) {
	data, err := c.client.Get(ctx, placesKey(filter)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var places []*domain.Place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, false, err
	}
	return places, true, nil
}

// SetPlaces сохраняет список направлений на placesTTL
func (c *PlacesCache) SetPlaces(ctx context.Context, filter domain.PlaceFilter, places []*domain.Place) error {
	payload, err := json.Marshal(places)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, placesKey(filter), payload, c.placesTTL).Err()
}

// InvalidatePlaces удаляет все закэшированные списки направлений
func (c *PlacesCache) InvalidatePlaces(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, placesKeyPrefix+"*", 100).Iterator()

	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Close закрывает соединение с Redis
func (c *PlacesCache) Close() error {
	return c.client.Close()
}

func placesKey(filter domain.PlaceFilter) string {
	if filter.State == nil {
		return placesKeyPrefix + "all"
	}
	return fmt.Sprintf("%sstate:%s", placesKeyPrefix, *filter.State)
}
