package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yungbote/coursehub-backend/internal/app"
	"github.com/yungbote/coursehub-backend/internal/data/seed"
)

func newSeedCommand(rt *runtime) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML course catalog into the store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return errors.New("--file is required")
			}
			cat, err := seed.LoadFile(file)
			if err != nil {
				return err
			}
			a, err := app.New(cmd.Context(), rt.log, rt.cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			return seed.Apply(cmd.Context(), a.DB, a.Services.Course, cat, a.Log)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to catalog YAML")
	return cmd
}
