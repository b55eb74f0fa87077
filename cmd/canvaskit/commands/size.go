// SPDX-License-Identifier: Unlicense OR MIT

package commands

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"gioui.org/canvaskit/blob"
	"gioui.org/canvaskit/canvas"
)

func (c *CLI) newSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size SRC...",
		Short: "Print the natural size of images given as paths, URLs or data URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &canvas.Drawer{Loader: new(canvas.Loader)}
			for _, src := range args {
				var (
					sz  image.Point
					err error
				)
				if blob.IsDataURL(src) {
					sz, err = d.ImageSize(cmd.Context(), src)
				} else {
					var cfg image.Config
					cfg, err = d.Loader.Config(cmd.Context(), src)
					sz = image.Pt(cfg.Width, cfg.Height)
				}
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%dx%d\n", sz.X, sz.Y); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
