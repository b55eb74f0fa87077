// SPDX-License-Identifier: Unlicense OR MIT

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"gioui.org/canvaskit/blob"
	"gioui.org/canvaskit/fileinput"
)

func (c *CLI) newEncodeCmd() *cobra.Command {
	var (
		typ     string
		noCheck bool
	)
	cmd := &cobra.Command{
		Use:   "encode FILE",
		Short: "Print a file as a data URL, applying the upload rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fileinput.OpenFile(args[0])
			if err != nil {
				return err
			}
			if typ != "" {
				f.Type = typ
			}
			if !noCheck {
				if err := c.cfg.Rules().Check(f); err != nil {
					f.Body.Close()
					return err
				}
			}
			max := c.cfg.Upload.MaxSize
			if noCheck {
				max = -1
			}
			url, err := fileinput.EncodeLimit(f, max)
			if err != nil {
				return err
			}
			c.log.Debug("encoded file", "name", f.Name, "type", f.Type, "size", f.Size)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "MIME type, instead of guessing from the extension")
	cmd.Flags().BoolVar(&noCheck, "no-check", false, "Skip the type and size rules")
	return cmd
}

func (c *CLI) newDecodeCmd() *cobra.Command {
	var (
		typ string
		out string
	)
	cmd := &cobra.Command{
		Use:   "decode [DATA_URL|-]",
		Short: "Write the payload of a data URL to a file or standard output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src string
			if len(args) == 0 || args[0] == "-" {
				in, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return zerr.Wrap(err, "read data URL")
				}
				src = string(in)
			} else {
				src = args[0]
			}
			b, err := blob.FromDataURL(strings.TrimSpace(src), typ)
			if err != nil {
				return err
			}
			c.log.Info("decoded data URL", "type", b.Type, "size", b.Size())
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(b.Data)
				return err
			}
			if err := os.WriteFile(out, b.Data, 0o644); err != nil {
				return zerr.With(zerr.Wrap(err, "write file"), "path", out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "MIME type to report, instead of the declared one")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file; standard output if empty")
	return cmd
}
