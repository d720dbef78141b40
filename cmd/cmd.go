// Package cmd contains the commands of the morse binary.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"morse_translator/codec"
	"morse_translator/settings"
)

const envPrefix = "MORSE"

type cli struct {
	v        *viper.Viper
	settings settings.Settings
}

// NewCLI builds the root command. Options are read from flags, then
// environment variables prefixed with MORSE, then a morse config file, in
// that order.
func NewCLI() *cobra.Command {
	c := &cli{v: viper.New()}

	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	c.v.AutomaticEnv()

	defaults := settings.Default()
	c.v.SetDefault(sentenceDelimiterFlag, defaults.SentenceDelimiter)
	c.v.SetDefault(wordBoundaryFlag, defaults.WordBoundary)
	c.v.SetDefault(unknownFlag, defaults.Unknown)
	c.v.SetDefault(directionFlag, defaults.Direction)
	c.v.SetDefault(addrConf, defaults.Server.Addr)
	c.v.SetDefault(cacheTTLConf, defaults.Server.CacheTTL)
	c.v.SetDefault(maxBodyConf, defaults.Server.MaxBody)
	c.v.SetDefault(cacheMaxEntriesConf, defaults.Server.CacheMaxEntries)
	c.v.SetDefault(cacheMaxInputConf, defaults.Server.CacheMaxInput)

	rootCmd := &cobra.Command{
		Use:   "morse [text]",
		Short: "Translate text to Morse code and back",
		Long: `Translate text to Morse code and back.

Input is taken from the single argument or, when there is none, from stdin.
Input holding any ASCII letter or digit is encoded, anything else is decoded.
Code that starts with a dash has to follow "--" or come from stdin.`,
		Example: `  morse "Hello world"
  echo '.... . .-.. .-.. ---' | morse
  morse -s STOP -w _ "Hello! How are you?"
  morse -u X -- '-.-. .....'`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: c.preRun,
		RunE:              c.runTranslate,
	}

	flags := rootCmd.PersistentFlags()
	flags.String(configFlag, "", "config file (default is morse.{yaml,json,toml} in /etc/morse, $HOME/.morse or .)")
	flags.String(logLevelFlag, logrus.WarnLevel.String(), "log level: trace, debug, info, warn, error")
	flags.String(logFormatFlag, "text", "log format: text or json")
	bindCodecFlags(c.v, rootCmd)

	rootCmd.AddCommand(c.newServeCommand())
	rootCmd.AddCommand(newTableCommand())

	return rootCmd
}

func (c *cli) readConfig(path string) error {
	if path != "" {
		c.v.SetConfigFile(path)
	} else {
		c.v.SetConfigName("morse")
		for _, p := range []string{"/etc/morse", "$HOME/.morse", "."} {
			c.v.AddConfigPath(p)
		}
	}

	err := c.v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && (path != "" || !errors.As(err, &notFound)) {
		return fmt.Errorf("error reading config: %w", err)
	}
	return nil
}

func (c *cli) preRun(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	level, _ := flags.GetString(logLevelFlag)
	format, _ := flags.GetString(logFormatFlag)
	if err := setupLogging(cmd.ErrOrStderr(), level, format); err != nil {
		return err
	}

	configPath, _ := flags.GetString(configFlag)
	if err := c.readConfig(configPath); err != nil {
		return err
	}

	s := settings.Default()
	if err := c.v.Unmarshal(&s); err != nil {
		return fmt.Errorf("error decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	c.settings = s

	logrus.WithFields(s.LogrusFields()).WithField("config_file", c.v.ConfigFileUsed()).Debug("Loaded settings")
	return nil
}

func (c *cli) runTranslate(cmd *cobra.Command, args []string) error {
	var input string
	if len(args) == 1 {
		input = args[0]
	} else {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
		input = string(raw)
	}

	forced, auto, err := codec.ParseDirection(c.settings.Direction)
	if err != nil {
		return err
	}

	translator := codec.New(c.settings.Codec())
	var out string
	d := forced
	if auto {
		out, d = translator.Translate(input)
	} else {
		out = translator.TranslateAs(input, forced)
	}
	logrus.WithField("direction", d.String()).WithField("input_length", len(input)).Debug("Translated")

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
