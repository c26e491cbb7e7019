package config

import (
	"time"

	iso8601 "github.com/senseyeio/duration"
)

type AppConfig struct {
	// Catalogue input file, one command per line
	Input string `yaml:"input"`

	Log     LogConfig     `yaml:"log"`
	API     APIConfig     `yaml:"api"`
	Redis   RedisConfig   `yaml:"redis"`
	MongoDB MongoDBConfig `yaml:"mongodb"`
	Neo4j   Neo4jConfig   `yaml:"neo4j"`
}

type LogConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
	Debug  bool   `yaml:"debug"`
}

type APIConfig struct {
	Listen string `yaml:"listen" validate:"required"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Address  string `yaml:"address" validate:"required,hostname_port"`
	Password string `yaml:"password"`
	Database int    `yaml:"database" validate:"gte=0"`

	// ISO8601 duration, eg. PT90M
	Expiration string `yaml:"expiration" validate:"required"`
}

// ExpirationDuration resolves the ISO8601 expiration against a fixed epoch so
// calendar units give a stable length
func (r RedisConfig) ExpirationDuration() (time.Duration, error) {
	duration, err := iso8601.ParseISO8601(r.Expiration)
	if err != nil {
		return 0, err
	}

	epoch := time.Unix(0, 0).UTC()

	return duration.Shift(epoch).Sub(epoch), nil
}

type MongoDBConfig struct {
	Connection string `yaml:"connection" validate:"required"`
	Database   string `yaml:"database" validate:"required"`
	BatchSize  int    `yaml:"batchsize" validate:"gt=0"`
}

type Neo4jConfig struct {
	URI      string `yaml:"uri" validate:"required"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database" validate:"required"`
}
