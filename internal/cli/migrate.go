package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/coursehub-backend/internal/data/db"
)

func newMigrateCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the course and lesson tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gdb, err := db.Open(rt.cfg.Store, rt.log)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer db.Close(gdb)
			if err := db.AutoMigrateAll(gdb.WithContext(cmd.Context())); err != nil {
				return fmt.Errorf("store automigrate: %w", err)
			}
			rt.log.Info("Migration complete", "driver", rt.cfg.Store.Driver)
			return nil
		},
	}
}
