package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jankenoboe/jankenoboe/internal/config"
	"github.com/jankenoboe/jankenoboe/internal/learning"
	"github.com/jankenoboe/jankenoboe/internal/report"
	"github.com/jankenoboe/jankenoboe/internal/service"
)

const (
	defaultDueLimit          = 100
	defaultReviewLimit       = 500
	defaultRelearnStartLevel = 7
)

func newLearningDueCommand() *cobra.Command {
	var limit int
	var offsetSeconds int64

	command := &cobra.Command{
		Use:   "learning-due",
		Short: "List learning records due for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithService(cmd, func(ctx context.Context, cfg *config.Config, svc service.Service) error {
				if !cmd.Flags().Changed("limit") {
					limit = cfg.Learning.DueLimit
				}
				records, err := svc.Due(ctx, limit, time.Duration(offsetSeconds)*time.Second)
				if err != nil {
					return err
				}

				out := listOutput[learning.DueRecord]{Count: len(records), Results: records}
				return writeOutput(cmd.OutOrStdout(), outputFormat, out, func(w io.Writer) {
					fmt.Fprintf(w, "%d learning record(s) due\n", len(records))
					for _, r := range records {
						fmt.Fprintf(w, "  %s  %s  %s  wait %d day(s)\n",
							r.ID, color.New(color.Bold).Sprint(r.SongName), levelLabel(r.Level), r.WaitDays)
					}
				})
			})
		},
	}
	command.Flags().IntVar(&limit, "limit", defaultDueLimit, "Maximum number of records")
	command.Flags().Int64Var(&offsetSeconds, "offset-seconds", 0, "Look ahead this many seconds")
	return command
}

func newLearningBatchCommand() *cobra.Command {
	var songIDs, relearnSongIDs string
	var relearnStartLevel int

	command := &cobra.Command{
		Use:   "learning-batch",
		Short: "Enroll songs for learning",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithService(cmd, func(ctx context.Context, cfg *config.Config, svc service.Service) error {
				if !cmd.Flags().Changed("relearn-start-level") {
					relearnStartLevel = cfg.Learning.RelearnStartLevel
				}
				result, err := svc.Enroll(ctx, learning.EnrollRequest{
					SongIDs:           learning.SplitIDs(songIDs),
					RelearnSongIDs:    learning.SplitIDs(relearnSongIDs),
					RelearnStartLevel: relearnStartLevel,
				})
				if err != nil {
					return err
				}

				return writeOutput(cmd.OutOrStdout(), outputFormat, result, func(w io.Writer) {
					printIDs(w, color.New(color.FgGreen), "created", result.CreatedIDs)
					printIDs(w, color.New(color.FgYellow), "skipped", result.SkippedSongIDs)
					printIDs(w, color.New(color.FgCyan), "already graduated", result.AlreadyGraduatedSongIDs)
				})
			})
		},
	}
	command.Flags().StringVar(&songIDs, "song-ids", "", "Comma-separated song ids to enroll")
	command.Flags().StringVar(&relearnSongIDs, "relearn-song-ids", "", "Comma-separated graduated song ids to enroll again")
	command.Flags().IntVar(&relearnStartLevel, "relearn-start-level", defaultRelearnStartLevel, "Level of re-enrolled songs")
	return command
}

func newLearningSongLevelUpIDsCommand() *cobra.Command {
	var ids string

	command := &cobra.Command{
		Use:   "learning-song-levelup-ids",
		Short: "Level up learning records after a review",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithService(cmd, func(ctx context.Context, cfg *config.Config, svc service.Service) error {
				result, err := svc.Advance(ctx, learning.SplitIDs(ids))
				if err != nil {
					return err
				}

				return writeOutput(cmd.OutOrStdout(), outputFormat, result, func(w io.Writer) {
					fmt.Fprintf(w, "processed %d record(s): %s, %s\n",
						result.TotalProcessed,
						color.GreenString("%d leveled up", result.LeveledUpCount),
						color.CyanString("%d graduated", result.GraduatedCount),
					)
				})
			})
		},
	}
	command.Flags().StringVar(&ids, "ids", "", "Comma-separated learning record ids")
	return command
}

func newLearningSongReviewCommand() *cobra.Command {
	var output string
	var limit int
	var offsetSeconds int64

	command := &cobra.Command{
		Use:   "learning-song-review",
		Short: "Write a review report of the due songs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithService(cmd, func(ctx context.Context, cfg *config.Config, svc service.Service) error {
				if !cmd.Flags().Changed("limit") {
					limit = cfg.Learning.ReviewLimit
				}
				r, err := svc.BuildReport(ctx, limit, time.Duration(offsetSeconds)*time.Second)
				if err != nil {
					return err
				}

				file, err := report.Write(output, r, report.Options{HTMLTemplatePath: cfg.Review.HTMLTemplate})
				if err != nil {
					return fmt.Errorf("report.Write(%s) > %w", output, err)
				}

				out := reviewOutput{File: file, Count: r.Count, LearningIDs: r.LearningIDs}
				return writeOutput(cmd.OutOrStdout(), outputFormat, out, func(w io.Writer) {
					fmt.Fprintf(w, "wrote %d song(s) to %s\n", r.Count, color.New(color.Bold).Sprint(file))
				})
			})
		},
	}
	command.Flags().StringVar(&output, "output", "", "Report path; the extension selects html, md, pdf, xlsx, json or yaml")
	command.Flags().IntVar(&limit, "limit", defaultReviewLimit, "Maximum number of songs")
	command.Flags().Int64Var(&offsetSeconds, "offset-seconds", 0, "Look ahead this many seconds")
	_ = command.MarkFlagRequired("output")
	return command
}

func newLearningBySongIDsCommand() *cobra.Command {
	var songIDs string

	command := &cobra.Command{
		Use:   "learning-by-song-ids",
		Short: "Show the learning records of songs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithService(cmd, func(ctx context.Context, cfg *config.Config, svc service.Service) error {
				records, err := svc.BySongIDs(ctx, learning.SplitIDs(songIDs))
				if err != nil {
					return err
				}

				out := listOutput[learning.SongRecord]{Count: len(records), Results: records}
				return writeOutput(cmd.OutOrStdout(), outputFormat, out, func(w io.Writer) {
					fmt.Fprintf(w, "%d learning record(s)\n", len(records))
					for _, r := range records {
						state := color.YellowString("not due")
						switch {
						case r.Graduated:
							state = color.CyanString("graduated")
						case r.Due:
							state = color.GreenString("due")
						}
						fmt.Fprintf(w, "  %s  %s  %s  %s\n", r.ID, r.SongName, levelLabel(r.Level), state)
					}
				})
			})
		},
	}
	command.Flags().StringVar(&songIDs, "song-ids", "", "Comma-separated song ids")
	return command
}

func levelLabel(level int) string {
	return color.YellowString("level %d", level)
}

func printIDs(w io.Writer, c *color.Color, label string, ids []string) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintf(w, "%s: %s\n", c.Sprint(label), strings.Join(ids, ", "))
}
