package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/coursehub-backend/internal/app"
	"github.com/yungbote/coursehub-backend/internal/platform/logger"
)

// runtime is filled by the root command before any subcommand runs.
type runtime struct {
	log *logger.Logger
	cfg app.Config
}

// NewRootCmd creates the coursehub command tree.
func NewRootCmd() *cobra.Command {
	rt := &runtime{}
	rootCmd := &cobra.Command{
		Use:           "coursehub",
		Short:         "Course and lesson catalog service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := app.NewLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			rt.log = log
			rt.log.Info("Loading environment variables...")
			rt.cfg = app.LoadConfig(log)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if rt.log != nil {
				rt.log.Sync()
			}
		},
	}

	rootCmd.AddCommand(
		newServeCommand(rt),
		newMigrateCommand(rt),
		newSeedCommand(rt),
	)
	return rootCmd
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
