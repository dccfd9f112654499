package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/dex/internal/infrastructure/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the dex configuration",
	}

	cmd.AddCommand(
		newConfigInitCmd(),
		newConfigShowCmd(),
	)

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration",
		Long:  "Creates .dex/config.yaml in the current directory. Global flags given here are written into the file.",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if err := initConfig(cwd, globalFlags); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.ConfigFilePath(cwd))
	return nil
}

// initConfig writes the commented default file, or the defaults with flags
// applied when any flag was given.
func initConfig(basePath string, flags rootFlags) error {
	if config.Exists(basePath) {
		return fmt.Errorf("dex already initialized in %s", basePath)
	}

	if flags == (rootFlags{}) {
		if err := config.WriteDefault(basePath); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
		return nil
	}

	cfg := config.Default()
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := config.Write(basePath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Prints the configuration after applying the config file, DEX_* environment variables and flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}

			cfg, err := loadConfig(cwd)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
