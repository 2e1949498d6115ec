package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dyck/dyckpath"
)

type boxesResult struct {
	Path  dyckpath.Path `json:"path" yaml:"path"`
	Count int           `json:"count" yaml:"count"`
	Boxes [][]int       `json:"boxes" yaml:"boxes"`
}

func (a *app) boxesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "boxes PATH",
		Short: "List the boxes under a Dyck path",
		Long: `List the boxes (i,j) under a Dyck path: row i reaches column j for
i < j <= i + path[i].

Example:
  dyck boxes 2,1,0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.parsePathArg(args[0])
			if err != nil {
				return err
			}
			return a.runBoxes(cmd.OutOrStdout(), path)
		},
	}
}

func (a *app) runBoxes(w io.Writer, path dyckpath.Path) error {
	boxes := a.cache.Boxes(path)
	res := boxesResult{Path: path, Count: boxes.Len(), Boxes: boxPairs(boxes)}

	return a.emit(w, res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, boxes)
		return err
	})
}
