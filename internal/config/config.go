// Package config loads server configuration from YAML and environment.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config is the root server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Quota     QuotaConfig     `yaml:"quota"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	LLM       LLMConfig       `yaml:"llm"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds gRPC listener settings. TLS is enabled when both files are set.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"SERVER_ADDR"             env-default:":8443" validate:"required"`
	TLSCert         string        `yaml:"tls_cert"         env:"SERVER_TLS_CERT"         validate:"required_with=TLSKey"`
	TLSKey          string        `yaml:"tls_key"          env:"SERVER_TLS_KEY"          validate:"required_with=TLSCert"`
	Reflection      bool          `yaml:"reflection"       env:"SERVER_REFLECTION"       env-default:"false"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// TLS reports whether a certificate pair is configured.
func (s ServerConfig) TLS() bool { return s.TLSCert != "" && s.TLSKey != "" }

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"               env:"DATABASE_DSN"               env-required:"true" validate:"required"`
	MaxConns         int32         `yaml:"max_conns"         env:"DATABASE_MAX_CONNS"         env-default:"10"    validate:"gte=1"`
	MinConns         int32         `yaml:"min_conns"         env:"DATABASE_MIN_CONNS"         env-default:"1"     validate:"gte=0,ltefield=MaxConns"`
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"5s"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true" validate:"min=32"`
}

// QuotaConfig drives the generation admission gate.
type QuotaConfig struct {
	Limit  int           `yaml:"limit"   env:"QUOTA_LIMIT"   env-default:"200"      validate:"gte=1"`
	Window time.Duration `yaml:"window"  env:"QUOTA_WINDOW"  env-default:"5h"       validate:"gte=1s"`
	// Backend is "postgres" or "memory" (single replica; resets on restart).
	Backend string `yaml:"backend" env:"QUOTA_BACKEND" env-default:"postgres" validate:"oneof=postgres memory"`
}

type WorkspaceConfig struct {
	MaxFolders        int `yaml:"max_folders"          env:"WORKSPACE_MAX_FOLDERS"          env-default:"50" validate:"gte=1"`
	MaxDecksPerFolder int `yaml:"max_decks_per_folder" env:"WORKSPACE_MAX_DECKS_PER_FOLDER" env-default:"75" validate:"gte=1"`
}

// LLMConfig configures the Gemini generation provider.
type LLMConfig struct {
	APIKey      string  `yaml:"api_key"     env:"LLM_API_KEY"     env-required:"true" validate:"required"`
	Model       string  `yaml:"model"       env:"LLM_MODEL"       env-default:"gemini-2.5-flash"`
	Temperature Temperature `yaml:"temperature" env:"LLM_TEMPERATURE" validate:"temperature"`
}

// Temperature keeps the configured text so an explicit "0" is not mistaken
// for an unset value (which would pick up a default).
type Temperature string

// Float parses the value; nil means unset.
func (t Temperature) Float() (*float32, error) {
	s := strings.TrimSpace(string(t))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return nil, fmt.Errorf("temperature %q: %w", s, err)
	}
	f := float32(v)
	return &f, nil
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
}

// ZapLevel converts the configured level; validation guarantees it parses.
func (l LogConfig) ZapLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
