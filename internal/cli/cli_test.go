package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dyck/dyckpath"
	"github.com/katalvlaran/dyck/internal/cli"
	"github.com/katalvlaran/dyck/orientation"
)

// run executes the root command with args and stdin, returning stdout,
// stderr and the command error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// TestPaths_Text lists the paths of length 3 in generation order.
func TestPaths_Text(t *testing.T) {
	out, _, err := run(t, "", "paths", "3")
	require.NoError(t, err)
	assert.Equal(t, "(0, 0, 0)\n(1, 0, 0)\n(0, 1, 0)\n(1, 1, 0)\n(2, 1, 0)\n", out)
}

// TestPaths_PrimitiveJSON decodes the json form.
func TestPaths_PrimitiveJSON(t *testing.T) {
	out, _, err := run(t, "", "paths", "4", "--primitive", "--format", "json")
	require.NoError(t, err)

	var res struct {
		N         int     `json:"n"`
		Primitive bool    `json:"primitive"`
		Count     int     `json:"count"`
		Paths     [][]int `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 4, res.N)
	assert.True(t, res.Primitive)
	assert.Equal(t, 5, res.Count)
	require.Len(t, res.Paths, 5)
	for _, p := range res.Paths {
		assert.True(t, dyckpath.IsPrimitive(p), "%v", p)
	}
}

// TestPaths_Errors rejects bad N and lengths above max_length.
func TestPaths_Errors(t *testing.T) {
	_, _, err := run(t, "", "paths", "x")
	assert.Error(t, err)

	_, _, err = run(t, "", "paths", "--", "-1")
	assert.ErrorIs(t, err, dyckpath.ErrNegativeLength)

	_, _, err = run(t, "", "paths", "9")
	assert.ErrorIs(t, err, cli.ErrTooLong)
}

// TestBoxes lists the boxes of the staircase.
func TestBoxes(t *testing.T) {
	out, _, err := run(t, "", "boxes", "(2, 1, 0)")
	require.NoError(t, err)
	assert.Equal(t, "{(0,1), (0,2), (1,2)}\n", out)

	_, _, err = run(t, "", "boxes", "1,2,0")
	assert.ErrorIs(t, err, dyckpath.ErrInvalidPath)

	_, _, err = run(t, "", "boxes", "1,a,0")
	assert.ErrorIs(t, err, dyckpath.ErrParsePath)
}

// TestBoxes_YAML decodes the yaml form.
func TestBoxes_YAML(t *testing.T) {
	out, _, err := run(t, "", "boxes", "1,1,0", "--format", "yaml")
	require.NoError(t, err)

	var res struct {
		Path  []int   `yaml:"path"`
		Count int     `yaml:"count"`
		Boxes [][]int `yaml:"boxes"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, []int{1, 1, 0}, res.Path)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, [][]int{{0, 1}, {1, 2}}, res.Boxes)
}

// TestOrientations_Text lists both orientations of a single box.
func TestOrientations_Text(t *testing.T) {
	out, _, err := run(t, "", "orientations", "1,0")
	require.NoError(t, err)
	assert.Equal(t, "(2, {(0,1)}, {})\n(2, {}, {(0,1)})\n", out)
}

// TestOrientations_JSONRoundTrip feeds every listed orientation back
// through the validator.
func TestOrientations_JSONRoundTrip(t *testing.T) {
	out, _, err := run(t, "", "orientations", "2,1,0", "--format", "json")
	require.NoError(t, err)

	var res struct {
		Count        int `json:"count"`
		Orientations []struct {
			N        int     `json:"n"`
			Ascents  [][]int `json:"ascents"`
			Descents [][]int `json:"descents"`
		} `json:"orientations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 6, res.Count)
	require.Len(t, res.Orientations, 6)
	for _, d := range res.Orientations {
		doc, err := json.Marshal(d)
		require.NoError(t, err)
		got, _, err := run(t, string(doc), "check")
		require.NoError(t, err, "%s", doc)
		assert.True(t, strings.HasPrefix(got, "valid: path (2, 1, 0)"), got)
	}
}

// TestOrientations_Draw styles the drawing only when asked to.
func TestOrientations_Draw(t *testing.T) {
	plain, _, err := run(t, "", "orientations", "1,1,0", "--draw")
	require.NoError(t, err)
	assert.Contains(t, plain, `\/`)
	assert.NotContains(t, plain, "\x1b[")

	colored, _, err := run(t, "", "orientations", "1,1,0", "--draw", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, colored, "\x1b[")
}

// TestCheck_Valid reads a YAML document from stdin.
func TestCheck_Valid(t *testing.T) {
	out, _, err := run(t, "{n: 3, ascents: [[0,1]], descents: [[1,2]]}", "check", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "valid: path (1, 1, 0)"), out)
}

// TestCheck_Invalid prints the reason and fails.
func TestCheck_Invalid(t *testing.T) {
	doc := `{"n": 3, "ascents": [[0,1],[1,2]], "descents": [[0,2]]}`
	out, _, err := run(t, doc, "check")
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrRejected)
	assert.ErrorIs(t, err, orientation.ErrThreeCycle)
	assert.Equal(t, "invalid: three_cycle\n", out)
}

// TestCheck_JSONFile reads a file and reports in json.
func TestCheck_JSONFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "o.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"n": 3, "ascents": [[0, 2]], "descents": []}`), 0o600))

	out, _, err := run(t, "", "check", file, "--format", "json")
	require.Error(t, err)
	assert.ErrorIs(t, err, orientation.ErrNotExhaustive)

	var res struct {
		Valid  bool   `json:"valid"`
		Reason string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Valid)
	assert.Equal(t, "not_exhaustive", res.Reason)
}

// TestCheck_SizeBound refuses documents above max_length without validating.
func TestCheck_SizeBound(t *testing.T) {
	for _, doc := range []string{
		"{n: 9, ascents: [], descents: []}",
		"{n: 9223372036854775807, ascents: [], descents: []}",
	} {
		out, _, err := run(t, doc, "check")
		assert.ErrorIs(t, err, cli.ErrTooLong, doc)
		assert.Empty(t, out)
	}

	var stdout, stderr bytes.Buffer
	code := cli.Execute([]string{"check"},
		strings.NewReader("{n: 9223372036854775807, ascents: [], descents: []}"), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "max_length")
}

// TestCheck_BadDocument rejects pairs of the wrong size.
func TestCheck_BadDocument(t *testing.T) {
	_, _, err := run(t, "{n: 2, ascents: [[0]], descents: []}", "check")
	assert.ErrorIs(t, err, cli.ErrBadDocument)

	_, _, err = run(t, "n: [", "check")
	assert.ErrorIs(t, err, cli.ErrBadDocument)

	_, _, err = run(t, "", "check", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestDraw renders a small path.
func TestDraw(t *testing.T) {
	out, _, err := run(t, "", "draw", "1,0")
	require.NoError(t, err)
	assert.Equal(t, " /\\\n/\\/\\\n", out)
}

// TestSelftest checks the sweep sizes for n <= 3.
func TestSelftest(t *testing.T) {
	out, _, err := run(t, "", "selftest", "--max", "3")
	require.NoError(t, err)
	assert.Equal(t, "ok: 9 paths (n <= 3), 20 orientations (n <= 3)\n", out)
}

// TestSelftest_MaxLength refuses sweeps above max_length before starting.
func TestSelftest_MaxLength(t *testing.T) {
	out, _, err := run(t, "", "selftest", "--max", "10")
	assert.ErrorIs(t, err, cli.ErrTooLong)
	assert.Empty(t, out)

	file := filepath.Join(t.TempDir(), "dyck.yaml")
	require.NoError(t, os.WriteFile(file, []byte("max_length: 2\n"), 0o600))
	_, _, err = run(t, "", "selftest", "--max", "3", "--config", file)
	assert.ErrorIs(t, err, cli.ErrTooLong)
}

// TestConfig_FileAndFlags applies the file, then explicit flags on top.
func TestConfig_FileAndFlags(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dyck.yaml")
	require.NoError(t, os.WriteFile(file, []byte("format: json\nmax_length: 2\n"), 0o600))

	out, _, err := run(t, "", "paths", "2", "--config", file)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)

	out, _, err = run(t, "", "paths", "2", "--config", file, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "(0, 0)\n(1, 0)\n", out)

	_, _, err = run(t, "", "paths", "3", "--config", file)
	assert.ErrorIs(t, err, cli.ErrTooLong)

	_, _, err = run(t, "", "paths", "2", "--format", "xml")
	assert.Error(t, err)
}

// TestMetrics dumps the exposition to stderr.
func TestMetrics(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Execute([]string{"orientations", "1,0", "--metrics"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "dyck_orderings_total 2")
	assert.Contains(t, stderr.String(), "dyck_orientations_distinct_total 2")

	// without the flag nothing is written
	stderr.Reset()
	code = cli.Execute([]string{"orientations", "1,0"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
}

// TestMetrics_FailedCheck still reports the rejected validation.
func TestMetrics_FailedCheck(t *testing.T) {
	var stdout, stderr bytes.Buffer
	doc := `{"n": 3, "ascents": [[0,1],[1,2]], "descents": [[0,2]]}`
	code := cli.Execute([]string{"check", "--metrics"}, strings.NewReader(doc), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Equal(t, "invalid: three_cycle\n", stdout.String())
	assert.Contains(t, stderr.String(), "Error: ")
	assert.Contains(t, stderr.String(), `dyck_orientation_checks_total{reason="three_cycle",valid="false"} 1`)
}

// TestLogging writes debug events to stderr only.
func TestLogging(t *testing.T) {
	out, stderr, err := run(t, "", "paths", "2", "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "(0, 0)\n(1, 0)\n", out)
	assert.Contains(t, stderr, "paths enumerated")
}

// TestExecute maps errors to exit codes and formats them.
func TestExecute(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cli.Execute([]string{"version"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "dyck version "+cli.Version+"\n", stdout.String())

	stdout.Reset()
	code = cli.Execute([]string{"boxes", "1,2,0"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: ")

	stderr.Reset()
	code = cli.Execute([]string{"boxes", "1,2,0", "--format", "json"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, code)
	var errObj struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(stderr.Bytes(), &errObj))
	assert.Contains(t, errObj.Error.Message, "not a Dyck path")
}

// TestCheck_Levels prints the rows by level under the verdict.
func TestCheck_Levels(t *testing.T) {
	// 0→1 and 2→1: row 1 sits one level above rows 0 and 2
	out, _, err := run(t, "{n: 3, ascents: [[0,1]], descents: [[1,2]]}", "check")
	require.NoError(t, err)
	assert.Equal(t, "valid: path (1, 1, 0)\n1: 1\n0: 0 2\n", out)
}
