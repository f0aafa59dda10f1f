package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/platinummonkey/boxnote/id"
)

var cfgFile string

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "boxnote",
	Short: "Inspect and render Boox .note containers",
	Long: `boxnote reads the proprietary .note container format produced by
Boox e-ink note-taking devices.

Features:
  - Dispatch between single-note and multi-note archive layouts
  - Decode note metadata, virtual pages, page models, shapes, and strokes
  - Rasterize a page to PNG, or export it as a single-page PDF`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.boxnote.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log output format (console, json)")
	rootCmd.PersistentFlags().String("output", ".", "output directory for rendered pages")

	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("output-dir", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".boxnote")
	}

	viper.SetEnvPrefix("BOXNOTE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// parsePageID accepts either the hyphenated or simple (32-char) UUID form
// for a page id positional argument.
func parsePageID(raw string) (id.PageUuid, error) {
	return id.ParsePageUuid(raw)
}

// parseNoteID accepts either the hyphenated or simple (32-char) UUID form
// for a note id positional argument.
func parseNoteID(raw string) (id.NoteUuid, error) {
	return id.ParseNoteUuid(raw)
}
