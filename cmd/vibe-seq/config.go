package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/inodb/vibe-seq/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vibe-seq configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/" + config.FileName + ".",
		Example: `  vibe-seq config                          # show all config
  vibe-seq config set window.report 100     # wider GC windows in reports
  vibe-seq config get repeats.min_repeats   # get a value`,
		Args: usageArgs(cobra.NoArgs),
		// The config file is read but not validated, so that an invalid
		// value can still be inspected and fixed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := config.Init(a.v, a.cfgFile)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigShow()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigSet(args[0], args[1])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigGet(args[0])
		},
	})

	return cmd
}

func (a *app) runConfigShow() error {
	if a.v.ConfigFileUsed() == "" {
		fmt.Fprintf(a.stdout, "# No config file found, showing defaults. Config file: ~/%s\n", config.FileName)
	} else {
		fmt.Fprintf(a.stdout, "# %s\n", a.v.ConfigFileUsed())
	}

	out, err := yaml.Marshal(a.v.AllSettings())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Fprint(a.stdout, string(out))
	return nil
}

// runConfigSet writes key to the config file. Only keys already present
// in the file and the new key are written; defaults are not persisted.
func (a *app) runConfigSet(key, raw string) error {
	if !slices.Contains(a.v.AllKeys(), key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	value := parseValue(raw)

	// Reject values that would make every later command fail.
	a.v.Set(key, value)
	if _, err := config.Load(a.v); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	cfgFile := a.v.ConfigFileUsed()
	if cfgFile == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		cfgFile = path
	}

	file := viper.New()
	file.SetConfigFile(cfgFile)
	if _, err := os.Stat(cfgFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	file.Set(key, value)

	if err := file.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(a.stdout, "Set %s = %v in %s\n", key, value, cfgFile)
	return nil
}

func (a *app) runConfigGet(key string) error {
	if !a.v.IsSet(key) {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Fprintln(a.stdout, a.v.Get(key))
	return nil
}

// parseValue turns command-line text into a bool, an int or a string.
func parseValue(s string) any {
	switch s {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}
