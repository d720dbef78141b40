// Package settings holds the runtime options of the translator and the
// result cache shared by the HTTP front end.
package settings

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"morse_translator/codec"
)

const (
	DefaultAddr     = ":6688"
	DefaultCacheTTL = time.Minute * 120
	DefaultMaxBody  = 1 << 20

	DefaultCacheMaxEntries = 1024
	DefaultCacheMaxInput   = 4 << 10
)

type Settings struct {
	SentenceDelimiter string `json:"sentence_delimiter" mapstructure:"sentence-delimiter"`
	WordBoundary      string `json:"word_boundary" mapstructure:"word-boundary"`
	Unknown           string `json:"unknown" mapstructure:"unknown"`
	Direction         string `json:"direction" mapstructure:"direction"`

	Server Server `json:"server" mapstructure:"server"`
}

type Server struct {
	Addr     string        `json:"addr" mapstructure:"addr"`
	CacheTTL time.Duration `json:"cache_ttl" mapstructure:"cache-ttl"`
	MaxBody  int64         `json:"max_body" mapstructure:"max-body"`

	CacheMaxEntries int `json:"cache_max_entries" mapstructure:"cache-max-entries"`
	CacheMaxInput   int `json:"cache_max_input" mapstructure:"cache-max-input"`
}

func Default() Settings {
	cfg := codec.DefaultConfig()
	return Settings{
		SentenceDelimiter: cfg.SentenceDelimiter,
		WordBoundary:      cfg.WordBoundary,
		Unknown:           cfg.Unknown,
		Direction:         "auto",
		Server: Server{
			Addr:     DefaultAddr,
			CacheTTL: DefaultCacheTTL,
			MaxBody:  DefaultMaxBody,

			CacheMaxEntries: DefaultCacheMaxEntries,
			CacheMaxInput:   DefaultCacheMaxInput,
		},
	}
}

func (s Settings) Codec() codec.Config {
	return codec.Config{
		SentenceDelimiter: s.SentenceDelimiter,
		WordBoundary:      s.WordBoundary,
		Unknown:           s.Unknown,
	}
}

// Validate checks the options that have a fixed vocabulary. Codec tokens
// are never validated.
func (s Settings) Validate() error {
	if _, _, err := codec.ParseDirection(s.Direction); err != nil {
		return err
	}
	if s.Server.CacheTTL < 0 {
		return fmt.Errorf("cache ttl must not be negative: %s", s.Server.CacheTTL)
	}
	if s.Server.CacheMaxEntries < 0 {
		return fmt.Errorf("cache max entries must not be negative: %d", s.Server.CacheMaxEntries)
	}
	if s.Server.CacheMaxInput < 0 {
		return fmt.Errorf("cache max input must not be negative: %d", s.Server.CacheMaxInput)
	}
	if s.Server.MaxBody <= 0 {
		return fmt.Errorf("max body must be positive: %d", s.Server.MaxBody)
	}
	return nil
}

func (s Settings) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"sentence_delimiter": s.SentenceDelimiter,
		"word_boundary":      s.WordBoundary,
		"unknown":            s.Unknown,
		"direction":          s.Direction,
	}
}

func (s Settings) LogrusFieldsWithAction(action string) logrus.Fields {
	fields := s.LogrusFields()
	fields["action"] = action
	return fields
}
