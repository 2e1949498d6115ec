package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dyck/dyckpath"
	"github.com/katalvlaran/dyck/internal/config"
	"github.com/katalvlaran/dyck/orientation"
)

// emit writes value in the configured format; text renders the human form.
func (a *app) emit(w io.Writer, value any, text func(io.Writer) error) error {
	switch a.cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// profile picks the termenv profile for drawings written to w.
// "auto" colors only when w is a terminal.
func (a *app) profile(w io.Writer) termenv.Profile {
	switch a.cfg.Color {
	case config.ColorAlways:
		return termenv.ANSI
	case config.ColorNever:
		return termenv.Ascii
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.ColorProfile()
	}

	return termenv.Ascii
}

// orientationDoc is the wire form of an orientation, shared by the check
// input and the json/yaml output:
//
//	{"n": 3, "ascents": [[0,1]], "descents": [[1,2]]}
type orientationDoc struct {
	N        int     `json:"n" yaml:"n"`
	Ascents  [][]int `json:"ascents" yaml:"ascents"`
	Descents [][]int `json:"descents" yaml:"descents"`
}

func toDoc(o orientation.Orientation) orientationDoc {
	return orientationDoc{
		N:        o.N,
		Ascents:  boxPairs(o.Ascents),
		Descents: boxPairs(o.Descents),
	}
}

// boxPairs lists s as [i, j] pairs; never nil so json prints [].
func boxPairs(s dyckpath.BoxSet) [][]int {
	out := make([][]int, 0, s.Len())
	for b := range s.All() {
		out = append(out, []int{b.I, b.J})
	}

	return out
}

// fromDoc rebuilds an orientation; every pair must have two entries.
func fromDoc(d orientationDoc) (orientation.Orientation, error) {
	ascents, err := pairBoxes("ascents", d.Ascents)
	if err != nil {
		return orientation.Orientation{}, err
	}
	descents, err := pairBoxes("descents", d.Descents)
	if err != nil {
		return orientation.Orientation{}, err
	}

	return orientation.New(d.N, ascents, descents), nil
}

func pairBoxes(field string, pairs [][]int) ([]dyckpath.Box, error) {
	boxes := make([]dyckpath.Box, 0, len(pairs))
	for k, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("%s[%d]: want [i, j], got %v: %w", field, k, p, ErrBadDocument)
		}
		boxes = append(boxes, dyckpath.Box{I: p[0], J: p[1]})
	}

	return boxes, nil
}

// parsePathArg reads a Dyck path argument and enforces max_length.
func (a *app) parsePathArg(s string) (dyckpath.Path, error) {
	raw, err := dyckpath.ParsePath(s)
	if err != nil {
		return nil, err
	}
	path, err := dyckpath.NewPath(raw...)
	if err != nil {
		return nil, err
	}
	if err := a.checkLength(len(path)); err != nil {
		return nil, err
	}

	return path, nil
}
