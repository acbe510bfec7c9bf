package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/relock/internal/app"
	"go.trai.ch/relock/internal/core/domain"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Regenerate pins and fail if the checked-in files drift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := runOptions(cmd)
			if err != nil {
				return err
			}
			return c.app.Verify(cmd.Context(), opts)
		},
	}
	addPlatformFlags(cmd)
	return cmd
}

func addPlatformFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("platform", "p", nil, "Target platform (linux, darwin, windows); default is the current host")
	cmd.Flags().BoolP("all", "a", false, "Target every configured platform")
}

func runOptions(cmd *cobra.Command) (app.RunOptions, error) {
	names, _ := cmd.Flags().GetStringSlice("platform")
	all, _ := cmd.Flags().GetBool("all")

	platforms := make([]domain.PlatformID, 0, len(names))
	for _, name := range names {
		id, err := domain.ParsePlatformID(name)
		if err != nil {
			return app.RunOptions{}, err
		}
		platforms = append(platforms, id)
	}

	return app.RunOptions{
		Platforms: platforms,
		All:       all,
	}, nil
}
