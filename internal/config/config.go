package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the pcinfo run configuration.
type Config struct {
	Format         string        `mapstructure:"format"`
	Output         string        `mapstructure:"output"`
	LogLevel       string        `mapstructure:"log_level"`
	CommandTimeout time.Duration `mapstructure:"command_timeout"`
	Disk           DiskConfig    `mapstructure:"disk"`
}

// DiskConfig tunes volume enumeration.
type DiskConfig struct {
	AllPartitions bool `mapstructure:"all_partitions"`
}

// Load reads configuration from file and environment. A missing config file
// is not an error; an explicitly named one that cannot be read is.
func Load(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pcinfo")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("/etc/pcinfo")
	}

	viper.SetDefault("format", "table")
	viper.SetDefault("output", "")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("command_timeout", "10s")
	viper.SetDefault("disk.all_partitions", false)

	viper.SetEnvPrefix("PCINFO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.CommandTimeout <= 0 {
		return nil, fmt.Errorf("command_timeout must be positive, got %s", cfg.CommandTimeout)
	}

	return &cfg, nil
}
