package cli

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/coursehub-backend/internal/app"
)

func newServeCommand(rt *runtime) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Migrate the store and serve the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				rt.cfg.HTTPAddr = addr
			}
			a, err := app.New(cmd.Context(), rt.log, rt.cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}
