package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"morse_translator/settings"
)

const (
	sentenceDelimiterFlag = "sentence-delimiter"
	wordBoundaryFlag      = "word-boundary"
	unknownFlag           = "unknown"
	directionFlag         = "direction"

	addrFlag     = "addr"
	addrConf     = "server.addr"
	cacheTTLFlag = "cache-ttl"
	cacheTTLConf = "server.cache-ttl"
	maxBodyFlag  = "max-body"
	maxBodyConf  = "server.max-body"

	cacheMaxEntriesFlag = "cache-max-entries"
	cacheMaxEntriesConf = "server.cache-max-entries"
	cacheMaxInputFlag   = "cache-max-input"
	cacheMaxInputConf   = "server.cache-max-input"

	configFlag    = "config"
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
)

// mustBindPFlag binds a viper key to a pflag and panics if the binding
// fails.
func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

// bindCodecFlags registers the translation options on command and all of
// its children.
func bindCodecFlags(v *viper.Viper, command *cobra.Command) {
	defaults := settings.Default()
	flags := command.PersistentFlags()

	flags.StringP(sentenceDelimiterFlag, "s", defaults.SentenceDelimiter, "token that replaces runs of . ! ? when encoding and is read back as a space when decoding")
	mustBindPFlag(v, sentenceDelimiterFlag, flags.Lookup(sentenceDelimiterFlag))

	flags.StringP(wordBoundaryFlag, "w", defaults.WordBoundary, "token written between words when encoding and read back as a space when decoding")
	mustBindPFlag(v, wordBoundaryFlag, flags.Lookup(wordBoundaryFlag))

	flags.StringP(unknownFlag, "u", defaults.Unknown, "placeholder for tokens that do not decode to a letter or digit")
	mustBindPFlag(v, unknownFlag, flags.Lookup(unknownFlag))

	flags.StringP(directionFlag, "d", defaults.Direction, "auto, encode or decode")
	mustBindPFlag(v, directionFlag, flags.Lookup(directionFlag))
}

func bindServeFlags(v *viper.Viper, command *cobra.Command) {
	defaults := settings.Default()
	flags := command.Flags()

	flags.String(addrFlag, defaults.Server.Addr, "the host:port address to serve on")
	mustBindPFlag(v, addrConf, flags.Lookup(addrFlag))

	flags.Duration(cacheTTLFlag, defaults.Server.CacheTTL, "how long translations are cached, 0 disables the cache")
	mustBindPFlag(v, cacheTTLConf, flags.Lookup(cacheTTLFlag))

	flags.Int64(maxBodyFlag, defaults.Server.MaxBody, "the largest accepted request body in bytes")
	mustBindPFlag(v, maxBodyConf, flags.Lookup(maxBodyFlag))

	flags.Int(cacheMaxEntriesFlag, defaults.Server.CacheMaxEntries, "the most translations kept in the cache, 0 disables the cache")
	mustBindPFlag(v, cacheMaxEntriesConf, flags.Lookup(cacheMaxEntriesFlag))

	flags.Int(cacheMaxInputFlag, defaults.Server.CacheMaxInput, "inputs longer than this many bytes are not cached")
	mustBindPFlag(v, cacheMaxInputConf, flags.Lookup(cacheMaxInputFlag))
}
