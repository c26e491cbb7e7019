package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/travigo/catalogue/pkg/util"
	"gopkg.in/yaml.v3"
)

const (
	defaultListen          = ":8080"
	defaultRedisAddress    = "localhost:6379"
	defaultRedisExpiration = "PT90M"
	defaultMongoConnection = "mongodb://localhost:27017/"
	defaultMongoDatabase   = "travigo"
	defaultMongoBatchSize  = 200
	defaultNeo4jURI        = "neo4j://localhost"
	defaultNeo4jUsername   = "neo4j"
	defaultNeo4jDatabase   = "neo4j"
)

func Default() AppConfig {
	return AppConfig{
		Log: LogConfig{
			Format: "console",
		},
		API: APIConfig{
			Listen: defaultListen,
		},
		Redis: RedisConfig{
			Address:    defaultRedisAddress,
			Expiration: defaultRedisExpiration,
		},
		MongoDB: MongoDBConfig{
			Connection: defaultMongoConnection,
			Database:   defaultMongoDatabase,
			BatchSize:  defaultMongoBatchSize,
		},
		Neo4j: Neo4jConfig{
			URI:      defaultNeo4jURI,
			Username: defaultNeo4jUsername,
			Database: defaultNeo4jDatabase,
		},
	}
}

// Load builds the configuration from defaults, the optional yaml file at path
// and then TRAVIGO_* environment variables, in that order of precedence
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := applyEnvironment(&cfg, util.GetEnvironmentVariables()); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func applyEnvironment(cfg *AppConfig, env map[string]string) error {
	if env["TRAVIGO_INPUT"] != "" {
		cfg.Input = env["TRAVIGO_INPUT"]
	}

	if env["TRAVIGO_LOG_FORMAT"] == "JSON" {
		cfg.Log.Format = "json"
	}
	if env["TRAVIGO_DEBUG"] == "YES" {
		cfg.Log.Debug = true
	}

	if env["TRAVIGO_API_LISTEN"] != "" {
		cfg.API.Listen = env["TRAVIGO_API_LISTEN"]
	}

	if env["TRAVIGO_REDIS_ADDRESS"] != "" {
		cfg.Redis.Enabled = true
		cfg.Redis.Address = env["TRAVIGO_REDIS_ADDRESS"]
	}
	if env["TRAVIGO_REDIS_PASSWORD"] != "" {
		cfg.Redis.Password = env["TRAVIGO_REDIS_PASSWORD"]
	}
	if env["TRAVIGO_REDIS_DATABASE"] != "" {
		database, err := strconv.Atoi(env["TRAVIGO_REDIS_DATABASE"])
		if err != nil {
			return fmt.Errorf("TRAVIGO_REDIS_DATABASE: %w", err)
		}
		cfg.Redis.Database = database
	}

	if env["TRAVIGO_MONGODB_CONNECTION"] != "" {
		cfg.MongoDB.Connection = env["TRAVIGO_MONGODB_CONNECTION"]
	}
	if env["TRAVIGO_MONGODB_DATABASE"] != "" {
		cfg.MongoDB.Database = env["TRAVIGO_MONGODB_DATABASE"]
	}

	if env["TRAVIGO_NEO4J_URI"] != "" {
		cfg.Neo4j.URI = env["TRAVIGO_NEO4J_URI"]
	}
	if env["TRAVIGO_NEO4J_USERNAME"] != "" {
		cfg.Neo4j.Username = env["TRAVIGO_NEO4J_USERNAME"]
	}
	if env["TRAVIGO_NEO4J_PASSWORD"] != "" {
		cfg.Neo4j.Password = env["TRAVIGO_NEO4J_PASSWORD"]
	}

	return nil
}
