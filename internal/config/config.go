package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"rook-game/internal/bot"
	"rook-game/internal/database"
	"rook-game/internal/shared"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig    `mapstructure:"server"`
	Database database.Config `mapstructure:"database"`
	Log      LogConfig       `mapstructure:"log"`
	Rules    RulesConfig     `mapstructure:"rules"`
	Bots     BotsConfig      `mapstructure:"bots"`
}

type ServerConfig struct {
	Addr           string         `mapstructure:"addr"`
	StaticDir      string         `mapstructure:"static_dir"`
	ArchiveTimeout time.Duration  `mapstructure:"archive_timeout"`
	BotDelay       BotDelayConfig `mapstructure:"bot_delay"`
}

// BotDelayConfig paces bot moves per phase so humans can follow the table.
type BotDelayConfig struct {
	Bid       time.Duration `mapstructure:"bid"`
	Continue  time.Duration `mapstructure:"continue"`
	Discard   time.Duration `mapstructure:"discard"`
	Trump     time.Duration `mapstructure:"trump"`
	CallColor time.Duration `mapstructure:"call_color"`
	Play      time.Duration `mapstructure:"play"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// RulesConfig names a preset and optionally overrides any of its constants.
type RulesConfig struct {
	Variant        string `mapstructure:"variant"`
	WildCardPoints *int   `mapstructure:"wild_card_points"`
	MaxBid         *int   `mapstructure:"max_bid"`
	MinOpeningBid  *int   `mapstructure:"min_opening_bid"`
	BidIncrement   *int   `mapstructure:"bid_increment"`
	MatchThreshold *int   `mapstructure:"match_threshold"`
}

type BotsConfig struct {
	DefaultDifficulty string `mapstructure:"default_difficulty"`
}

var overrideKeys = []string{
	"rules.wild_card_points",
	"rules.max_bid",
	"rules.min_opening_bid",
	"rules.bid_increment",
	"rules.match_threshold",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.static_dir", "./public")
	v.SetDefault("server.archive_timeout", 5*time.Second)
	v.SetDefault("server.bot_delay.bid", 600*time.Millisecond)
	v.SetDefault("server.bot_delay.continue", 600*time.Millisecond)
	v.SetDefault("server.bot_delay.discard", 500*time.Millisecond)
	v.SetDefault("server.bot_delay.trump", 600*time.Millisecond)
	v.SetDefault("server.bot_delay.call_color", 500*time.Millisecond)
	v.SetDefault("server.bot_delay.play", 700*time.Millisecond)

	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.dsn", "./rook.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetDefault("rules.variant", string(shared.VariantRobinson))
	v.SetDefault("bots.default_difficulty", string(bot.Medium))
}

// Load reads .env (if present), then the YAML file at path (optional when
// empty), then ROOK_* environment variables, e.g. ROOK_SERVER_ADDR or
// ROOK_RULES_MAX_BID.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("ROOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range overrideKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := cfg.Rules.Ruleset(); err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	if _, err := bot.ParseDifficulty(cfg.Bots.DefaultDifficulty); err != nil {
		return nil, fmt.Errorf("bots: %w", err)
	}
	return &cfg, nil
}

// Ruleset resolves the preset and applies the overrides.
func (r RulesConfig) Ruleset() (shared.Ruleset, error) {
	rules, err := shared.RulesFor(r.Variant)
	if err != nil {
		return shared.Ruleset{}, err
	}
	apply := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&rules.WildCardPoints, r.WildCardPoints)
	apply(&rules.MaxBid, r.MaxBid)
	apply(&rules.MinOpeningBid, r.MinOpeningBid)
	apply(&rules.BidIncrement, r.BidIncrement)
	apply(&rules.MatchThreshold, r.MatchThreshold)
	return rules, rules.Validate()
}
