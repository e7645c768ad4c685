// Package generate runs the full icon batch: every target is rendered and
// saved in a fixed order, and the first failure stops the run.
package generate

import (
	"context"
	"fmt"
	"image"
	"io"

	"github.com/Faultbox/pgp-icons/internal/icon"
)

// Saver persists one rendered icon and returns its relative path.
type Saver interface {
	Save(t icon.Target, img image.Image) (string, error)
}

// Result lists the icons written before the run finished or failed.
type Result struct {
	Written []string
}

// Run renders and saves every target from icon.Targets. Icons written before
// a failure stay on disk; the remaining ones are skipped.
func Run(ctx context.Context, s Saver, out io.Writer) (Result, error) {
	return RunTargets(ctx, s, out, icon.Targets())
}

// RunTargets is Run over an explicit target list.
func RunTargets(ctx context.Context, s Saver, out io.Writer, targets []icon.Target) (Result, error) {
	var res Result

	fmt.Fprintln(out, "Generating modern PGP icons...")
	fmt.Fprintln(out)

	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		img, err := icon.Render(t.Size, t.Variant)
		if err != nil {
			return res, fmt.Errorf("rendering %s: %w", t, err)
		}

		rel, err := s.Save(t, img)
		if err != nil {
			return res, fmt.Errorf("saving %s: %w", t, err)
		}
		res.Written = append(res.Written, rel)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! All icons generated.")
	return res, nil
}
