// SPDX-License-Identifier: Unlicense OR MIT

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"gioui.org/canvaskit/blob"
	"gioui.org/canvaskit/canvas"
	"gioui.org/canvaskit/canvas/raster"
	"gioui.org/canvaskit/internal/sheet"
)

func (c *CLI) newDrawCmd() *cobra.Command {
	var (
		width, height int
		out, stroke   string
		title, src    string
	)
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Render the sample sheet to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width <= 0 || height <= 0 {
				return zerr.With(zerr.With(zerr.Wrap(ErrSize, "draw"), "width", width), "height", height)
			}
			if stroke == "" {
				stroke = c.cfg.Picker.Default
			}
			if _, err := canvas.ParseColor(stroke); err != nil {
				return err
			}
			rc := raster.New(width, height)
			size := canvas.Pt(float64(width), float64(height))
			sheet.Draw(rc, sheet.Options{Size: size, Stroke: canvas.Color(stroke), Title: title})

			if src != "" {
				d := &canvas.Drawer{Loader: new(canvas.Loader)}
				slot := sheet.ImageSlot(size)
				var err error
				if blob.IsDataURL(src) {
					err = d.DrawUploadImage(cmd.Context(), rc, src, slot, 0)
				} else {
					err = d.DrawImage(cmd.Context(), rc, src, slot, 0)
				}
				if err != nil {
					return err
				}
			}

			if out == "-" {
				return rc.EncodePNG(cmd.OutOrStdout())
			}
			if err := writePNG(out, rc); err != nil {
				return err
			}
			c.log.Info("wrote sample sheet", "path", out, "width", width, "height", height)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 640, "Width in pixels")
	cmd.Flags().IntVar(&height, "height", 480, "Height in pixels")
	cmd.Flags().StringVarP(&out, "output", "o", "sheet.png", "Output file, or - for standard output")
	cmd.Flags().StringVar(&stroke, "stroke", "", "Outline color; the configured picker default if empty")
	cmd.Flags().StringVar(&title, "title", "", "Heading text")
	cmd.Flags().StringVar(&src, "image", "", "Image path, URL or data URL to draw in the image slot")
	return cmd
}
