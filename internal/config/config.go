package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Paths    PathsConfig    `mapstructure:"paths"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Server   ServerConfig   `mapstructure:"server"`
	LogLevel string         `mapstructure:"log_level"`
}

type PathsConfig struct {
	FrequencyPath    string `mapstructure:"frequency_path"`
	CorpusPath       string `mapstructure:"corpus_path"`
	WordListPath     string `mapstructure:"wordlist_path"`
	ContractionsPath string `mapstructure:"contractions_path"`
}

type PipelineConfig struct {
	Workers     int    `mapstructure:"workers"`
	Alphabet    string `mapstructure:"alphabet"`
	FoldAccents bool   `mapstructure:"fold_accents"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
	MaxTextBytes    int64  `mapstructure:"max_text_bytes"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			FrequencyPath:    "data/frequencies.txt",
			CorpusPath:       "",
			WordListPath:     "",
			ContractionsPath: "",
		},
		Pipeline: PipelineConfig{
			Workers:     0,
			Alphabet:    "abcdefghijklmnopqrstuvwxyz",
			FoldAccents: false,
		},
		Redis: RedisConfig{
			Enabled:  false,
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
			Key:      "custom_dict",
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			ShutdownTimeout: 10,
			MaxTextBytes:    1 << 20,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("paths-frequency-path", defaults.Paths.FrequencyPath, "Path to \"word count\" frequency table")
	fs.String("paths-corpus-path", defaults.Paths.CorpusPath, "Raw corpus to count frequencies from; takes precedence over the frequency table")
	fs.String("paths-wordlist-path", defaults.Paths.WordListPath, "Optional list of extra known words, one per line")
	fs.String("paths-contractions-path", defaults.Paths.ContractionsPath, "Optional contraction table (form<TAB>expansion); built-in table when empty")
	fs.Int("pipeline-workers", defaults.Pipeline.Workers, "Spelling correction goroutines (0 = one per CPU)")
	fs.String("pipeline-alphabet", defaults.Pipeline.Alphabet, "Letters used to build correction candidates")
	fs.Bool("pipeline-fold-accents", defaults.Pipeline.FoldAccents, "Strip diacritics instead of blanking accented letters")
	fs.Bool("redis-enabled", defaults.Redis.Enabled, "Load custom known words from Redis")
	fs.String("redis-addr", defaults.Redis.Addr, "Redis address")
	fs.String("redis-password", defaults.Redis.Password, "Redis password")
	fs.Int("redis-db", defaults.Redis.DB, "Redis database")
	fs.String("redis-key", defaults.Redis.Key, "Redis set holding custom words")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown timeout in seconds")
	fs.Int64("server-max-text-bytes", defaults.Server.MaxTextBytes, "Largest accepted request body")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("TXTCLEAN")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	if err := v.BindEnv("redis.addr", "TXTCLEAN_REDIS_ADDR", "REDIS_ADDR"); err != nil {
		return Config{}, fmt.Errorf("bind redis env vars: %w", err)
	}
	if err := v.BindEnv("redis.password", "TXTCLEAN_REDIS_PASSWORD", "REDIS_PASSWORD"); err != nil {
		return Config{}, fmt.Errorf("bind redis env vars: %w", err)
	}
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("txtclean")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("paths.frequency_path", c.Paths.FrequencyPath)
	v.SetDefault("paths.corpus_path", c.Paths.CorpusPath)
	v.SetDefault("paths.wordlist_path", c.Paths.WordListPath)
	v.SetDefault("paths.contractions_path", c.Paths.ContractionsPath)
	v.SetDefault("pipeline.workers", c.Pipeline.Workers)
	v.SetDefault("pipeline.alphabet", c.Pipeline.Alphabet)
	v.SetDefault("pipeline.fold_accents", c.Pipeline.FoldAccents)
	v.SetDefault("redis.enabled", c.Redis.Enabled)
	v.SetDefault("redis.addr", c.Redis.Addr)
	v.SetDefault("redis.password", c.Redis.Password)
	v.SetDefault("redis.db", c.Redis.DB)
	v.SetDefault("redis.key", c.Redis.Key)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("log_level", c.LogLevel)
}

// flagKeys maps config keys to their command-line flags. Flags are bound to
// the nested keys directly so that config file values still apply when a
// flag is left unset.
var flagKeys = map[string]string{
	"paths.frequency_path":    "paths-frequency-path",
	"paths.corpus_path":       "paths-corpus-path",
	"paths.wordlist_path":     "paths-wordlist-path",
	"paths.contractions_path": "paths-contractions-path",
	"pipeline.workers":        "pipeline-workers",
	"pipeline.alphabet":       "pipeline-alphabet",
	"pipeline.fold_accents":   "pipeline-fold-accents",
	"redis.enabled":           "redis-enabled",
	"redis.addr":              "redis-addr",
	"redis.password":          "redis-password",
	"redis.db":                "redis-db",
	"redis.key":               "redis-key",
	"server.listen_addr":      "server-listen-addr",
	"server.shutdown_timeout": "server-shutdown-timeout",
	"server.max_text_bytes":   "server-max-text-bytes",
	"log_level":               "log-level",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
