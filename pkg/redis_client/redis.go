package redis_client

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/travigo/catalogue/pkg/config"
)

var Client *redis.Client

func Connect(cfg config.RedisConfig) error {
	options := &redis.Options{
		Addr: cfg.Address,
		DB:   cfg.Database,
	}
	if cfg.Password != "" {
		options.Password = cfg.Password
	}

	client := redis.NewClient(options)

	statusCmd := client.Ping(context.Background())
	if err := statusCmd.Err(); err != nil {
		client.Close()
		return err
	}

	Client = client

	return nil
}
