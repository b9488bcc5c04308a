package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/iptdemo/internal/flagx"
	"github.com/dmitrijs2005/iptdemo/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero" so the overlay only touches keys
// that appear in the file.
type JsonConfig struct {
	StorageBackend *string `json:"storage_backend"`
	SQLitePath     *string `json:"sqlite_path"`
	PostgresDSN    *string `json:"postgres_dsn"`

	RedisAddr      *string `json:"redis_addr"`
	RedisPassword  *string `json:"redis_password"`
	RedisDB        *int    `json:"redis_db"`
	RedisKeyPrefix *string `json:"redis_key_prefix"`

	S3Bucket       *string `json:"s3_bucket"`
	S3Region       *string `json:"s3_region"`
	S3BaseEndpoint *string `json:"s3_base_endpoint"`
	S3AccessKey    *string `json:"s3_access_key"`
	S3SecretKey    *string `json:"s3_secret_key"`
	S3KeyPrefix    *string `json:"s3_key_prefix"`

	DocumentKey   *string         `json:"document_key"`
	SessionSecret *string         `json:"session_secret"`
	SessionTTL    *timex.Duration `json:"session_ttl"`

	LogBackend *string `json:"log_backend"`
	LogLevel   *string `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config
// in args. Without such a flag nothing happens. Read or decode errors panic;
// a broken config file is a startup error.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.SQLitePath, jc.SQLitePath)
	setString(&cfg.PostgresDSN, jc.PostgresDSN)

	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisPassword, jc.RedisPassword)
	if jc.RedisDB != nil {
		cfg.RedisDB = *jc.RedisDB
	}
	setString(&cfg.RedisKeyPrefix, jc.RedisKeyPrefix)

	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.S3KeyPrefix, jc.S3KeyPrefix)

	setString(&cfg.DocumentKey, jc.DocumentKey)
	setString(&cfg.SessionSecret, jc.SessionSecret)
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}

	setString(&cfg.LogBackend, jc.LogBackend)
	setString(&cfg.LogLevel, jc.LogLevel)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
