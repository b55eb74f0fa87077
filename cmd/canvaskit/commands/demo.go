// SPDX-License-Identifier: Unlicense OR MIT

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Open a window with the color picker, file input and canvas preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.log.Debug("starting demo", "title", c.cfg.Window.Title)
			return c.demo.RunDemo(cmd.Context(), c.cfg, c.log)
		},
	}
}
