package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dyck/dyckpath"
	"github.com/katalvlaran/dyck/render"
)

type drawResult struct {
	Path    dyckpath.Path `json:"path" yaml:"path"`
	Drawing string        `json:"drawing" yaml:"drawing"`
}

func (a *app) drawCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "draw PATH",
		Short: "Draw a Dyck path as ascii art",
		Long: `Draw a Dyck path as stacked "/\" cells, highest row first.

Example:
  dyck draw 1,3,2,2,1,0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.parsePathArg(args[0])
			if err != nil {
				return err
			}
			return a.runDraw(cmd.OutOrStdout(), path)
		},
	}
}

func (a *app) runDraw(w io.Writer, path dyckpath.Path) error {
	drawing, err := render.PathASCII(path)
	if err != nil {
		return err
	}

	return a.emit(w, drawResult{Path: path, Drawing: drawing}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, drawing)
		return err
	})
}
