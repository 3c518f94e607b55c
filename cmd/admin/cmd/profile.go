package cmd

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/replyguy/replyguy/internal/config"
	"github.com/replyguy/replyguy/internal/repository"
	"github.com/replyguy/replyguy/internal/service"
	"github.com/spf13/cobra"
)

func ProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect user profiles",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <user-id>",
		Short: "Print a profile and its latest logs as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(cfg *config.Config, database *sqlx.DB) error {
				profileRepo := repository.NewProfileRepository(database)
				logRepo := repository.NewLogRepository(database)
				profiles := service.NewProfileService(profileRepo)
				tracking := service.NewTrackingService(logRepo, profileRepo, cfg.HistoryDays)

				ctx := cmd.Context()
				profile, exists, err := profiles.Stored(ctx, args[0])
				if err != nil {
					return err
				}
				logs, err := tracking.LatestLogs(ctx, args[0])
				if err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"profile":       profile,
					"profileExists": exists,
					"latestLogs":    logs,
				})
			})
		},
	})

	return cmd
}
