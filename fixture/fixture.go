package fixture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/submatch/match"
)

// Sentinel errors for scenario file parsing.
var (
	ErrTooFewLines     = errors.New("fixture: scenario needs at least pattern/options/target lines")
	ErrMissingSentinel = errors.New("fixture: expected-match list missing terminating \"()\"")
	ErrMalformedTuple  = errors.New("fixture: expected-match line is not a parenthesized id list")
	ErrMalformedOption = errors.New("fixture: option is not key=0 or key=1")
)

// Scenario is one parsed fixture file: a pattern and target (as SMILES),
// the matcher options to apply, and the expected sequence of yielded
// matches (spec §6/§8).
type Scenario struct {
	Name          string
	PatternSMILES string
	TargetSMILES  string
	Overlap       bool
	Permute       bool
	Expected      [][]string
}

// Parse reads one scenario from r in the format of spec §6: pattern
// line, options line ("overlap=0/1 permute=0/1"), target line, then one
// expected-match line per match (a parenthesized space-separated id
// list), terminated by the sentinel line "()".
func Parse(r io.Reader) (*Scenario, error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fixture: read: %w", err)
	}
	if len(lines) < 4 {
		return nil, ErrTooFewLines
	}

	overlap, permute, err := parseOptions(lines[1])
	if err != nil {
		return nil, err
	}

	expected, err := ParseMatchList(lines[3:])
	if err != nil {
		return nil, err
	}

	return &Scenario{
		PatternSMILES: lines[0],
		TargetSMILES:  lines[2],
		Overlap:       overlap,
		Permute:       permute,
		Expected:      expected,
	}, nil
}

// ParseMatchList parses the expected-match portion of a scenario file:
// zero or more parenthesized id-list lines, followed by the "()"
// sentinel. Lines after the sentinel are ignored, matching how a test
// harness reads "the yielded sequence plus a trailing () sentinel".
func ParseMatchList(lines []string) ([][]string, error) {
	var out [][]string
	for _, line := range lines {
		if line == "()" {
			return out, nil
		}
		ids, err := parseTuple(line)
		if err != nil {
			return nil, err
		}
		out = append(out, ids)
	}

	return nil, ErrMissingSentinel
}

func parseTuple(line string) ([]string, error) {
	if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
		return nil, fmt.Errorf("%w: %q", ErrMalformedTuple, line)
	}
	inner := strings.TrimSpace(line[1 : len(line)-1])
	if inner == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedTuple, line)
	}

	return strings.Fields(inner), nil
}

func parseOptions(line string) (overlap, permute bool, err error) {
	overlap, permute = true, false
	for _, tok := range strings.Fields(line) {
		kv := strings.SplitN(tok, "=", 2)
		if len(kv) != 2 {
			return false, false, fmt.Errorf("%w: %q", ErrMalformedOption, tok)
		}
		val, convErr := strconv.Atoi(kv[1])
		if convErr != nil || (val != 0 && val != 1) {
			return false, false, fmt.Errorf("%w: %q", ErrMalformedOption, tok)
		}
		switch kv[0] {
		case "overlap":
			overlap = val == 1
		case "permute":
			permute = val == 1
		default:
			return false, false, fmt.Errorf("%w: unknown key %q", ErrMalformedOption, kv[0])
		}
	}

	return overlap, permute, nil
}

// LoadDir parses every "*.fixture" file in dir, in sorted filename
// order, naming each Scenario after its filename without extension.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fixture: LoadDir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".fixture" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	scenarios := make([]*Scenario, 0, len(names))
	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("fixture: LoadDir: %w", err)
		}
		sc, err := Parse(f)
		closeErr := f.Close()
		if err != nil {
			return nil, fmt.Errorf("fixture: LoadDir: %s: %w", name, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("fixture: LoadDir: %s: %w", name, closeErr)
		}
		sc.Name = strings.TrimSuffix(name, ".fixture")
		scenarios = append(scenarios, sc)
	}

	return scenarios, nil
}

// Run builds the pattern/target graphs from the scenario's SMILES
// strings, drives a match.Matcher configured with the scenario's
// options to exhaustion, and returns the observed matches as
// parenthesized-tuple-equivalent id lists — the same shape as Expected,
// so a test can compare them directly with reflect.DeepEqual /
// require.Equal.
func (s *Scenario) Run() ([][]string, error) {
	pattern, err := ParseSMILES(s.PatternSMILES)
	if err != nil {
		return nil, fmt.Errorf("fixture: Run: pattern: %w", err)
	}
	target, err := ParseSMILES(s.TargetSMILES)
	if err != nil {
		return nil, fmt.Errorf("fixture: Run: target: %w", err)
	}

	m, err := match.New(pattern, match.WithOverlap(s.Overlap), match.WithPermute(s.Permute))
	if err != nil {
		return nil, fmt.Errorf("fixture: Run: New: %w", err)
	}
	if err := m.Bind(target); err != nil {
		return nil, fmt.Errorf("fixture: Run: Bind: %w", err)
	}

	var got [][]string
	for {
		mt, err := m.Next()
		if err != nil {
			return nil, fmt.Errorf("fixture: Run: Next: %w", err)
		}
		if mt == nil {
			break
		}
		ids := make([]string, len(mt.VertexMap))
		for i, tv := range mt.VertexMap {
			ids[i] = target.ID(tv)
		}
		got = append(got, ids)
	}

	return got, nil
}
