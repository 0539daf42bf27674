// Package cli implements the teamcard terminal client.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/preston-bernstein/football-team-service/internal/config"
)

// Build info, set via -ldflags at build time.
var (
	Version   = "dev"
	CommitID  = "unknown"
	BuildDate = "unknown"
)

const envPrefix = "TEAMCARD"

// NewRootCommand assembles the teamcard command tree. Queries for watch are
// read from in.
func NewRootCommand(in io.Reader) *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "teamcard",
		Short:         "Look up football team cards from TheSportsDB",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}
	root.SetIn(in)

	flags := root.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file path")
	flags.String(keyBaseURL, "", "TheSportsDB API base URL")
	flags.String(keyAPIKey, "", "TheSportsDB API key")
	flags.String(keyProvider, config.DefaultProvider, "data provider: thesportsdb or fixture")
	flags.String(keyImageProxy, config.DefaultImageProxy, "image proxy prefix; empty disables proxying")
	flags.String(keyPlaceholderURL, config.DefaultPlaceholderURL, "photo used for players without an image")
	flags.StringP(keyOutput, "o", outputText, "output format: text or json")
	flags.Duration(keyTimeout, config.DefaultSportsTimeout, "upstream request timeout")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn, error")
	_ = v.BindPFlags(flags)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newShowCommand(v), newWatchCommand(v), newVersionCommand())
	return root
}

// Execute runs the command tree against the process arguments.
func Execute(in io.Reader) error {
	return NewRootCommand(in).Execute()
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", cfgFile, err)
	}
	return nil
}
