// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the quickview CLI, an educational
// tool for exploring AI safety concepts and alignment research papers.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the quickview CLI.
var rootCmd = &cobra.Command{
	Use:   "quickview",
	Short: "Educational quick views of AI safety and alignment research",
	Long: `quickview prints educational walkthroughs of AI safety concepts and
analyses of fundamental alignment research papers.

Each walkthrough is a subcommand: guide explains the AGI/ASI capability
hierarchy with growth projections, analyze runs descriptive statistics
over a curated paper set, and demo prints a small arithmetic sample.
Every run ends with a structured summary document written to disk.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./quickview.yaml or ~/.config/quickview/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("quickview")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "quickview"))
		}
	}

	viper.SetEnvPrefix("QUICKVIEW")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string option: an explicitly set flag wins,
// then the config file or environment, then the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// intSetting resolves an int option with the same precedence as
// stringSetting: explicit flag, then config/environment, then default.
func intSetting(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

// int64Setting resolves an int64 option with the same precedence as
// stringSetting: explicit flag, then config/environment, then default.
func int64Setting(cmd *cobra.Command, flag, key string) int64 {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt64(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt64(key)
	}
	v, _ := cmd.Flags().GetInt64(flag)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
