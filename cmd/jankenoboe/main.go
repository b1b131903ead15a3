package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	configFile   string
	outputFormat OutputFormat
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := color.New(color.FgRed).Fprintf(os.Stderr, "failed to execute a command: %v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	outputFormat = FormatJSON

	rootCommand := &cobra.Command{
		Use:           "jankenoboe",
		Short:         "Spaced-repetition scheduler for learning songs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug mode")
	flags.Var(&outputFormat, "format", "Output format. Options: json, yaml, text")

	rootCommand.AddCommand(
		newLearningDueCommand(),
		newLearningBatchCommand(),
		newLearningSongLevelUpIDsCommand(),
		newLearningSongReviewCommand(),
		newLearningBySongIDsCommand(),
		newMigrateCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode.
// Logs go to stderr so stdout carries only command output.
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
