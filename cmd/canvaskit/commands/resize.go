// SPDX-License-Identifier: Unlicense OR MIT

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"gioui.org/canvaskit/blob"
	"gioui.org/canvaskit/canvas"
	"gioui.org/canvaskit/canvas/raster"
)

// ErrSize is returned for non-positive target sizes.
var ErrSize = zerr.New("invalid target size")

func (c *CLI) newResizeCmd() *cobra.Command {
	var (
		width, height int
		dir, filter   string
	)
	cmd := &cobra.Command{
		Use:   "resize SRC...",
		Short: "Scale images to an exact size and write them as PNG",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return zerr.With(zerr.With(zerr.Wrap(ErrSize, "resize"), "width", width), "height", height)
			}
			if filter == "" {
				filter = c.cfg.Resize.Filter
			}
			scaler, err := raster.ScalerByName(filter)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return zerr.Wrap(err, "create output directory")
			}

			loader := &canvas.Loader{}
			names := outputNames(args)
			outs := make([]string, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(c.cfg.Resize.Workers)
			for i, src := range args {
				g.Go(func() error {
					img, err := loader.Load(ctx, src)
					if err != nil {
						return err
					}
					out := filepath.Join(dir, names[i])
					if err := writePNG(out, raster.ResizeWith(img, width, height, scaler)); err != nil {
						return err
					}
					c.log.Debug("resized image", "src", shortSrc(src), "out", out)
					outs[i] = out
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			for _, out := range outs {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "Target width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "Target height in pixels")
	cmd.Flags().StringVarP(&dir, "output", "o", ".", "Output directory")
	cmd.Flags().StringVar(&filter, "filter", "", "Scaler: nearest, approxbilinear, bilinear or catmullrom")
	return cmd
}

// outputName names the PNG written for the i-th source.
func outputName(src string, i int) string {
	if blob.IsDataURL(src) {
		return fmt.Sprintf("image-%d.png", i+1)
	}
	base := filepath.Base(strings.TrimPrefix(src, "file://"))
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

// outputNames names the PNG of every source, numbering repeated names so
// no two sources write the same file.
func outputNames(srcs []string) []string {
	names := make([]string, len(srcs))
	used := make(map[string]bool, len(srcs))
	for i, src := range srcs {
		name := outputName(src, i)
		base := strings.TrimSuffix(name, ".png")
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s-%d.png", base, n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

func shortSrc(src string) string {
	if blob.IsDataURL(src) {
		if i := strings.IndexByte(src, ','); i >= 0 {
			return src[:i+1] + "..."
		}
	}
	return src
}

func writePNG(path string, c *raster.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "create file"), "path", path)
	}
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return zerr.With(zerr.Wrap(err, "encode png"), "path", path)
	}
	return f.Close()
}
