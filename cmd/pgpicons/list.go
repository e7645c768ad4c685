package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/pgp-icons/internal/icon"
)

func newListCmd(a *app) *cobra.Command {
	var showState bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the icons that would be generated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.store(cmd.OutOrStdout())
			out := cmd.OutOrStdout()
			if showState {
				fmt.Fprintf(out, "Base: %s\n", s.BaseDir())
			}

			for _, t := range icon.Targets() {
				if !showState {
					fmt.Fprintln(out, t.RelPath())
					continue
				}
				fmt.Fprintf(out, "%-64s %2dpx %-7s %s\n", t.RelPath(), t.Size, t.Variant, fileState(s.Path(t), s.BackupPath(s.Path(t))))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showState, "long", "l", false, "Show size, variant and whether the file and its backup exist")
	return cmd
}

// fileState describes whether an icon and its backup are on disk.
func fileState(path, backup string) string {
	state := "missing"
	if _, err := os.Stat(path); err == nil {
		state = "present"
	}
	if _, err := os.Stat(backup); err == nil {
		state += ", backed up"
	}
	return state
}
