// Package main provides the rsparam CLI application entry point.
// rsparam is a toolkit for working with Revit shared parameter files:
// listing, searching, duplicate detection, comparison, merging and
// sorting.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rsparam/internal/logger"
	"rsparam/internal/output"
	"rsparam/internal/version"
)

var (
	logLevel string
	logFile  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rsparam",
	Short: "Utilities for working with Revit shared parameter files",
	Long: `rsparam parses, inspects and compares Revit shared parameter files:
tab-delimited text files declaring named, typed parameters grouped into
categories. It can list entries, search them with regular expressions,
detect duplicates, compare two files, merge several files and sort one.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress commentary output")
	rootCmd.PersistentFlags().StringP("encoding", "e", "utf-8", "Text encoding of shared parameter files")
	rootCmd.PersistentFlags().String("theme", "default", "Output theme (default|plain)")

	for _, flag := range []string{"quiet", "encoding", "theme"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(compCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

// initConfig wires configuration sources in precedence order:
// flags > RSPARAM_* environment variables > .env file > defaults.
func initConfig() {
	// A missing .env file is the normal case
	_ = godotenv.Load()

	viper.SetEnvPrefix("RSPARAM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := logger.Configure(logLevel, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// newPrinter builds the printer for one command run from the resolved
// configuration, writing to the command's output stream.
func newPrinter(cmd *cobra.Command) (*output.Printer, error) {
	theme, err := output.LoadTheme(viper.GetString("theme"))
	if err != nil {
		return nil, err
	}

	options := []output.Option{output.WithTheme(theme), output.WithWriter(cmd.OutOrStdout())}
	if viper.GetBool("quiet") {
		options = append(options, output.Quiet())
	}
	return output.NewPrinter(options...), nil
}

// encodingName returns the configured file encoding.
func encodingName() string {
	return viper.GetString("encoding")
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetFormattedVersion())
	},
}
