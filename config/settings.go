// Package config provides application settings loaded from environment
// variables.
//
// Settings are created via New() which handles:
// - Environment variable parsing with validation
// - Default value application
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/corpusgen/pen/token"
	"github.com/corpusgen/pen/tokenize"
)

// Settings holds all application configuration (spec.md §6's CLI/config
// table).
type Settings struct {
	Source    WebSourceConfig
	Tokeniser TokeniserConfig
	Shatter   tokenize.ShatteringOptions
	Pen       PenConfig
	Render    RenderConfig
}

// WebSourceConfig configures the WebSource collaborator.
type WebSourceConfig struct {
	BaseAddress string
	RequestURI  string
	Encoding    string
}

// TokeniserConfig configures the Tokeniser.
type TokeniserConfig struct {
	Kind    tokenize.Kind
	Pattern string
}

// PenConfig configures Pen construction.
type PenConfig struct {
	ComparisonType token.Relation
	SentinelToken  string
	Intern         bool
}

// RenderConfig configures the Renderer.
type RenderConfig struct {
	RelevantTokens int
	Seed           int64
	HasSeed        bool
	FromPosition   int
	HasFromPos     bool
	MaxTokens      int
}

// New loads Settings from environment variables, applying the defaults
// documented in spec.md §6.
func New() (Settings, error) {
	kind, err := getEnvKind("PEN_TOKENISER_KIND", tokenize.RegexSplit)
	if err != nil {
		return Settings{}, err
	}

	comparisonType, err := getEnvRelation("PEN_COMPARISON_TYPE", token.Ordinal)
	if err != nil {
		return Settings{}, err
	}

	intern, err := getEnvBool("PEN_INTERN", false)
	if err != nil {
		return Settings{}, err
	}

	relevantTokens, err := getEnvInt("PEN_RANDOM_RELEVANT_TOKENS", 2)
	if err != nil {
		return Settings{}, err
	}

	maxTokens, err := getEnvInt("PEN_RANDOM_MAX_TOKENS", 200)
	if err != nil {
		return Settings{}, err
	}

	seed, hasSeed, err := getEnvInt64Optional("PEN_RANDOM_SEED")
	if err != nil {
		return Settings{}, err
	}

	fromPosition, hasFromPos, err := getEnvIntOptional("PEN_RANDOM_FROM_POSITION")
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Source: WebSourceConfig{
			BaseAddress: os.Getenv("PEN_WEBSOURCE_BASE_ADDRESS"),
			RequestURI:  os.Getenv("PEN_WEBSOURCE_REQUEST_URI"),
			Encoding:    getEnvString("PEN_WEBSOURCE_ENCODING", "utf-8"),
		},
		Tokeniser: TokeniserConfig{
			Kind:    kind,
			Pattern: getEnvString("PEN_TOKENISER_PATTERN", `\s+`),
		},
		Shatter: tokenize.DefaultShatteringOptions(),
		Pen: PenConfig{
			ComparisonType: comparisonType,
			SentinelToken:  os.Getenv("PEN_SENTINEL_TOKEN"),
			Intern:         intern,
		},
		Render: RenderConfig{
			RelevantTokens: relevantTokens,
			Seed:           seed,
			HasSeed:        hasSeed,
			FromPosition:   fromPosition,
			HasFromPos:     hasFromPos,
			MaxTokens:      maxTokens,
		},
	}, nil
}

// MustNew loads Settings, panicking if the environment is invalid. Use
// this only when configuration errors should be fatal.
func MustNew() Settings {
	settings, err := New()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return settings
}

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return i, nil
}

func getEnvIntOptional(key string) (int, bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return i, true, nil
}

func getEnvInt64Optional(key string) (int64, bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false, nil
	}
	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return i, true, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return b, nil
}

func getEnvKind(key string, defaultVal tokenize.Kind) (tokenize.Kind, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	k, err := tokenize.ParseKind(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return k, nil
}

func getEnvRelation(key string, defaultVal token.Relation) (token.Relation, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	r, err := token.ParseRelation(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return r, nil
}
