package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dyck/dyckpath"
	"github.com/katalvlaran/dyck/orientation"
	"github.com/katalvlaran/dyck/render"
)

type orientationsResult struct {
	Path         dyckpath.Path    `json:"path" yaml:"path"`
	Count        int              `json:"count" yaml:"count"`
	Orientations []orientationDoc `json:"orientations" yaml:"orientations"`
}

func (a *app) orientationsCommand() *cobra.Command {
	var draw bool

	cmd := &cobra.Command{
		Use:   "orientations PATH",
		Short: "List the acyclic orientations of the boxes under a path",
		Long: `List every distinct acyclic orientation of the boxes under a Dyck path,
as (n, {ascents}, {descents}). Each of the n! row orderings is classified,
so the path length is bounded by max_length.

With --draw every orientation is followed by its drawing: ascents as "/\",
descents as "\/".

Examples:
  dyck orientations 2,1,0
  dyck orientations 1,1,1,0 --draw --color always`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.parsePathArg(args[0])
			if err != nil {
				return err
			}
			return a.runOrientations(cmd.OutOrStdout(), path, draw)
		},
	}
	cmd.Flags().BoolVar(&draw, "draw", false, "Draw every orientation (text format only)")

	return cmd
}

func (a *app) runOrientations(w io.Writer, path dyckpath.Path, draw bool) error {
	all, err := orientation.AllOrientations(path,
		orientation.WithBoxCache(a.cache),
		orientation.WithOnOrientation(a.rec.ObserveOrientation))
	if err != nil {
		return err
	}
	stats := a.cache.Stats()
	a.logger.Debug("orientations enumerated",
		"path", path.String(),
		"count", len(all),
		"cache_hits", stats.Hits,
		"cache_misses", stats.Misses)

	docs := make([]orientationDoc, len(all))
	for i, o := range all {
		docs[i] = toDoc(o)
	}
	res := orientationsResult{Path: path, Count: len(all), Orientations: docs}

	return a.emit(w, res, func(w io.Writer) error {
		profile := a.profile(w)
		for _, o := range all {
			if _, err := fmt.Fprintln(w, o); err != nil {
				return err
			}
			if !draw {
				continue
			}
			pic, err := render.OrientationASCII(o, render.WithProfile(profile))
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s\n\n", pic); err != nil {
				return err
			}
		}
		return nil
	})
}
