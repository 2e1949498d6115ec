package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dyck/dyckpath"
	"github.com/katalvlaran/dyck/orientation"
)

// ErrSelfTest indicates a failed selftest property.
var ErrSelfTest = errors.New("cli: selftest failed")

// orientationSelfTestMax caps the orientation sweep; n = 6 already means
// 132 paths times 720 orderings.
const orientationSelfTestMax = 5

type selftestResult struct {
	OK              bool `json:"ok" yaml:"ok"`
	PathsMax        int  `json:"paths_max" yaml:"paths_max"`
	OrientationsMax int  `json:"orientations_max" yaml:"orientations_max"`
	Paths           int  `json:"paths" yaml:"paths"`
	Orientations    int  `json:"orientations" yaml:"orientations"`
}

func (a *app) selftestCommand() *cobra.Command {
	var maxN int

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Cross-check the enumerators against the validators",
		Long: `Cross-check the enumerators against the validators:

  - for every n <= --max the path enumerator matches a brute-force filter of
    {0..n-1}^n by the Dyck and primitive predicates;
  - for every path with n <= min(--max, 5) every enumerated orientation
    validates and reconstructs its path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSelftest(cmd.OutOrStdout(), maxN)
		},
	}
	cmd.Flags().IntVar(&maxN, "max", 6, "Largest path length to check (at most max_length)")

	return cmd
}

// runSelftest runs both sweeps and reports their sizes.
func (a *app) runSelftest(w io.Writer, maxN int) error {
	// CrossCheck walks n^n tuples
	if err := a.checkLength(maxN); err != nil {
		return err
	}

	// 1) path enumeration vs brute force
	if err := dyckpath.CrossCheck(maxN); err != nil {
		return fmt.Errorf("%w: %w", ErrSelfTest, err)
	}
	res := selftestResult{PathsMax: maxN, OrientationsMax: min(maxN, orientationSelfTestMax)}
	for n := 0; n <= maxN; n++ {
		res.Paths += dyckpath.Catalan(n)
	}

	// 2) orientation soundness and reconstruction
	for n := 0; n <= res.OrientationsMax; n++ {
		paths, err := dyckpath.Collect(n)
		if err != nil {
			return err
		}
		for _, p := range paths {
			count, err := a.checkOrientations(p)
			if err != nil {
				return fmt.Errorf("%w: path %v: %w", ErrSelfTest, p, err)
			}
			res.Orientations += count
		}
	}
	res.OK = true
	a.logger.Debug("selftest passed", "paths", res.Paths, "orientations", res.Orientations)

	return a.emit(w, res, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "ok: %d paths (n <= %d), %d orientations (n <= %d)\n",
			res.Paths, res.PathsMax, res.Orientations, res.OrientationsMax)
		return err
	})
}

// checkOrientations validates every orientation of p and returns their count.
func (a *app) checkOrientations(p dyckpath.Path) (int, error) {
	all, err := orientation.AllOrientations(p, orientation.WithBoxCache(a.cache))
	if err != nil {
		return 0, err
	}
	for _, o := range all {
		err := orientation.Validate(o, orientation.WithBoxCache(a.cache))
		a.rec.ObserveCheck(err)
		if err != nil {
			return 0, err
		}
		back, err := o.Path()
		if err != nil {
			return 0, err
		}
		if !back.Equal(p) {
			return 0, fmt.Errorf("%v reconstructs %v", o, back)
		}
	}

	return len(all), nil
}
