package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jankenoboe/jankenoboe/internal/database"
)

type migrateOutput struct {
	Applied []int64 `json:"applied" yaml:"applied"`
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			ctx := cmd.Context()
			db, err := database.Connect(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Connect() > %w", err)
			}
			defer db.Close()

			applied, err := database.Migrate(ctx, db)
			if err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), outputFormat, migrateOutput{Applied: applied}, func(w io.Writer) {
				if len(applied) == 0 {
					fmt.Fprintln(w, "no pending migrations")
					return
				}
				fmt.Fprintf(w, "applied %d migration(s): %v\n", len(applied), applied)
			})
		},
	}
}
