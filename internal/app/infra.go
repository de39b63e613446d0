package app

import (
	"context"
	"database/sql"

	"github.com/Muhammed-Kahraman/Blog-Website/internal/config"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/db"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/logger"
	"github.com/Muhammed-Kahraman/Blog-Website/internal/redis"

	_ "github.com/go-sql-driver/mysql"
)

type Infra struct {
	DB    *db.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("mysql", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{
		DB:    &db.DB{DB: sqlDB},
		Redis: redisClient,
	}, nil
}
