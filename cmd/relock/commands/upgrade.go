package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newUpgradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Regenerate pins at the latest satisfying versions and report the changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := runOptions(cmd)
			if err != nil {
				return err
			}
			return c.app.Upgrade(cmd.Context(), opts)
		},
	}
	addPlatformFlags(cmd)
	return cmd
}
