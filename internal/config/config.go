// Package config resolves settings from defaults, an optional config.toml,
// SEQLCS_ environment variables and bound command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	appDir     = "seqlcs"
	envPrefix  = "SEQLCS"
	envFileKey = "SEQLCS_CONFIG"
)

const (
	KeyReportFormat      = "report.format"
	KeyCompareWorkers    = "compare.workers"
	KeyArchivePath       = "archive.path"
	KeyLogLevel          = "log.level"
	KeyGenerateCount     = "generate.count"
	KeyGenerateMinLength = "generate.min_length"
	KeyGenerateMaxLength = "generate.max_length"
	KeyGenerateAlphabet  = "generate.alphabet"
)

type Config struct {
	Report   ReportConfig
	Compare  CompareConfig
	Archive  ArchiveConfig
	Log      LogConfig
	Generate GenerateConfig
}

type ReportConfig struct {
	Format string
}

type CompareConfig struct {
	Workers int
}

type ArchiveConfig struct {
	// Path is empty when archiving is disabled.
	Path string
}

type LogConfig struct {
	Level string
}

type GenerateConfig struct {
	Count     int
	MinLength int
	MaxLength int
	Alphabet  string
}

// Prepare registers defaults, the config file location and environment
// overrides on v. Flags are bound by the caller afterwards.
func Prepare(v *viper.Viper) error {
	v.SetDefault(KeyReportFormat, "text")
	v.SetDefault(KeyCompareWorkers, 1)
	v.SetDefault(KeyArchivePath, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyGenerateCount, 10)
	v.SetDefault(KeyGenerateMinLength, 5)
	v.SetDefault(KeyGenerateMaxLength, 30)
	v.SetDefault(KeyGenerateAlphabet, "TGCA")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(envFileKey); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, appDir))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Report:  ReportConfig{Format: strings.TrimSpace(v.GetString(KeyReportFormat))},
		Compare: CompareConfig{Workers: v.GetInt(KeyCompareWorkers)},
		Archive: ArchiveConfig{Path: strings.TrimSpace(v.GetString(KeyArchivePath))},
		Log:     LogConfig{Level: strings.TrimSpace(v.GetString(KeyLogLevel))},
		Generate: GenerateConfig{
			Count:     v.GetInt(KeyGenerateCount),
			MinLength: v.GetInt(KeyGenerateMinLength),
			MaxLength: v.GetInt(KeyGenerateMaxLength),
			Alphabet:  v.GetString(KeyGenerateAlphabet),
		},
	}

	if _, err := cfg.Log.SlogLevel(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Level == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", KeyLogLevel, c.Level, err)
	}

	return level, nil
}
