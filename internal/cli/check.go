package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dyck/dyckpath"
	"github.com/katalvlaran/dyck/orientation"
	"github.com/katalvlaran/dyck/render"
)

// checkResult reports one validation.
type checkResult struct {
	Valid  bool           `json:"valid" yaml:"valid"`
	Reason string         `json:"reason,omitempty" yaml:"reason,omitempty"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty"`
	Path   dyckpath.Path  `json:"path,omitempty" yaml:"path,omitempty"`
	Levels []int          `json:"levels,omitempty" yaml:"levels,omitempty"`
	Input  orientationDoc `json:"input" yaml:"input"`
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE|-]",
		Short: "Validate an orientation document",
		Long: `Validate an orientation read from FILE, or from stdin when FILE is "-"
or omitted. The document is YAML or JSON:

  {"n": 3, "ascents": [[0, 1]], "descents": [[1, 2]]}

A valid orientation prints "valid" with its path and the rows grouped by
drawing level, highest first. An invalid one prints the reason and the
command exits with status 1.

Example:
  echo '{n: 2, ascents: [[0,1]], descents: []}' | dyck check`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			data, err := readInput(cmd.InOrStdin(), src)
			if err != nil {
				return err
			}
			return a.runCheck(cmd.OutOrStdout(), data)
		},
	}
}

// readInput reads src, "-" meaning stdin.
func readInput(stdin io.Reader, src string) ([]byte, error) {
	if src == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("check: read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}

	return data, nil
}

// runCheck decodes and validates one document.
//
// Steps:
//  1. Decode YAML (a superset of JSON) into orientationDoc; n is bounded
//     by max_length.
//  2. Build the orientation and validate it through the shared cache.
//  3. Report; an invalid orientation becomes ErrRejected after printing.
func (a *app) runCheck(w io.Writer, data []byte) error {
	// 1) decode
	var doc orientationDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("check: %w: %w", ErrBadDocument, err)
	}
	if err := a.checkLength(doc.N); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	o, err := fromDoc(doc)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	// 2) validate
	verr := orientation.Validate(o, orientation.WithBoxCache(a.cache))
	a.rec.ObserveCheck(verr)
	a.logger.Debug("orientation checked", "n", o.N, "reason", orientation.Reason(verr))

	// 3) report
	res := checkResult{Valid: verr == nil, Reason: orientation.Reason(verr), Input: toDoc(o)}
	if verr != nil {
		res.Error = verr.Error()
	} else {
		path, err := o.Path()
		if err != nil {
			return err
		}
		levels, err := o.Levels()
		if err != nil {
			return err
		}
		res.Path, res.Levels = path, levels
	}
	err = a.emit(w, res, func(w io.Writer) error {
		if !res.Valid {
			_, err := fmt.Fprintf(w, "invalid: %s\n", res.Reason)
			return err
		}
		text, err := render.LevelsText(o)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "valid: path %v\n%s\n", res.Path, text)
		return err
	})
	if err != nil {
		return err
	}
	if verr != nil {
		return fmt.Errorf("%w: %w", ErrRejected, verr)
	}

	return nil
}
