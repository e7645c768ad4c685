package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/pgp-icons/internal/icon"
	"github.com/Faultbox/pgp-icons/internal/logger"
	"github.com/Faultbox/pgp-icons/internal/preview"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		output string
		scale  int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Write an enlarged PNG contact sheet of all icons",
		Long: `preview renders every icon without touching the icon tree and lays them out
on one PNG, enlarged with nearest-neighbour scaling over a checkerboard.

Examples:
  pgpicons preview
  pgpicons preview -o /tmp/icons.png --scale 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = a.cfg.Preview.Path
			}
			if scale == 0 {
				scale = a.cfg.Preview.Scale
			}

			sheet, err := preview.Sheet(icon.Targets(), scale)
			if err != nil {
				return err
			}
			if err := preview.WritePNG(output, sheet); err != nil {
				return err
			}

			logger.Info("preview written", zap.String("path", output), zap.Int("scale", scale))
			fmt.Fprintf(cmd.OutOrStdout(), "Preview: %s (%dx%d)\n", output, sheet.Bounds().Dx(), sheet.Bounds().Dy())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PNG path (default from config)")
	cmd.Flags().IntVar(&scale, "scale", 0, "Enlargement factor (default from config)")
	return cmd
}
