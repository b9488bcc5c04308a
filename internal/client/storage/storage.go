package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/iptdemo/internal/client/config"
	"github.com/dmitrijs2005/iptdemo/internal/client/repositories/kv"
	"github.com/dmitrijs2005/iptdemo/internal/common"
	"github.com/dmitrijs2005/iptdemo/internal/filex"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// CloseFunc releases resources held by an opened backend.
type CloseFunc func() error

func noopClose() error { return nil }

// Open builds the repository for cfg.StorageBackend.
func Open(ctx context.Context, cfg *config.Config) (kv.Repository, CloseFunc, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return kv.NewMemoryRepository(), noopClose, nil
	case config.BackendSQLite:
		return openSQLite(ctx, cfg.SQLitePath)
	case config.BackendPostgres:
		return openPostgres(ctx, cfg.PostgresDSN)
	case config.BackendRedis:
		return openRedis(ctx, cfg)
	case config.BackendS3:
		return openS3(ctx, cfg)
	default:
		return nil, nil, fmt.Errorf("%w: %q", common.ErrUnknownBackend, cfg.StorageBackend)
	}
}

func openSQLite(ctx context.Context, path string) (kv.Repository, CloseFunc, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("sqlite: %w", common.ErrStorageNotConfig)
	}

	// plain file paths get their directory created; DSNs are passed through
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db, DialectSQLite); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("sqlite migrations: %w", err)
	}

	return kv.NewSQLiteRepository(db), db.Close, nil
}

func openPostgres(ctx context.Context, dsn string) (kv.Repository, CloseFunc, error) {
	if dsn == "" {
		return nil, nil, fmt.Errorf("postgres: %w", common.ErrStorageNotConfig)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("postgres ping: %w", err)
	}

	if err := RunMigrations(ctx, db, DialectPostgres); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("postgres migrations: %w", err)
	}

	return kv.NewPostgresRepository(db), db.Close, nil
}

func openRedis(ctx context.Context, cfg *config.Config) (kv.Repository, CloseFunc, error) {
	if cfg.RedisAddr == "" {
		return nil, nil, fmt.Errorf("redis: %w", common.ErrStorageNotConfig)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	return kv.NewRedisRepository(rdb, cfg.RedisKeyPrefix), rdb.Close, nil
}

func openS3(ctx context.Context, cfg *config.Config) (kv.Repository, CloseFunc, error) {
	if cfg.S3Bucket == "" {
		return nil, nil, fmt.Errorf("s3: %w", common.ErrStorageNotConfig)
	}

	client, err := kv.NewS3Client(ctx, kv.S3Options{
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("s3 client: %w", err)
	}

	return kv.NewS3Repository(client, cfg.S3Bucket, cfg.S3KeyPrefix), noopClose, nil
}
