package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dyck/dyckpath"
)

// pathsResult is the json/yaml form of the paths command.
type pathsResult struct {
	N         int             `json:"n" yaml:"n"`
	Primitive bool            `json:"primitive" yaml:"primitive"`
	Count     int             `json:"count" yaml:"count"`
	Paths     []dyckpath.Path `json:"paths" yaml:"paths"`
}

func (a *app) pathsCommand() *cobra.Command {
	var primitive bool

	cmd := &cobra.Command{
		Use:   "paths N",
		Short: "List every Dyck path of length N",
		Long: `List every Dyck path of length N, one per line.

With --primitive only the paths touching the baseline on their last row are
listed.

Examples:
  dyck paths 3
  dyck paths 4 --primitive --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("paths: N %q is not an integer", args[0])
			}
			return a.runPaths(cmd.OutOrStdout(), n, primitive)
		},
	}
	cmd.Flags().BoolVar(&primitive, "primitive", false, "Only primitive paths")

	return cmd
}

func (a *app) runPaths(w io.Writer, n int, primitive bool) error {
	if err := a.checkLength(n); err != nil {
		return err
	}
	seq, err := dyckpath.AllDyckPaths(n, dyckpath.WithPrimitive(primitive))
	if err != nil {
		return err
	}
	paths := make([]dyckpath.Path, 0, dyckpath.Catalan(n))
	for p := range seq {
		a.rec.ObservePath(primitive)
		paths = append(paths, p)
	}
	a.logger.Debug("paths enumerated", "n", n, "primitive", primitive, "count", len(paths))

	res := pathsResult{N: n, Primitive: primitive, Count: len(paths), Paths: paths}
	return a.emit(w, res, func(w io.Writer) error {
		for _, p := range paths {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
		return nil
	})
}
