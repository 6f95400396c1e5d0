package cli

import (
	stderrors "errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmgilman/go/errors"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "FILEOPS"

// Settings is the resolved CLI configuration.
type Settings struct {
	Root              string
	LogLevel          string
	JSON              bool
	BlockOnOpenHandle bool
}

// loadSettings resolves settings in order of precedence: flags, FILEOPS_*
// environment variables, the config file, then defaults.
func loadSettings(cmd *cobra.Command) (Settings, error) {
	v := viper.New()
	v.SetDefault("root", ".")
	v.SetDefault("log-level", "error")
	v.SetDefault("json", false)
	v.SetDefault("block-on-open-handle", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, errors.Wrapf(err, errors.CodeIO, "failed to read config file %s", configFile)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(".fileops")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return Settings{}, errors.Wrapf(err, errors.CodeIO, "failed to read config file %s", v.ConfigFileUsed())
			}
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Settings{}, errors.Wrap(err, errors.CodeInternal, "failed to bind flags")
	}

	return Settings{
		Root:              v.GetString("root"),
		LogLevel:          v.GetString("log-level"),
		JSON:              v.GetBool("json"),
		BlockOnOpenHandle: v.GetBool("block-on-open-handle"),
	}, nil
}
