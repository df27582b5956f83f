// Package probfile loads linear-programming problem definitions from YAML
// files into lp.Problem values.
//
// This is the configuration boundary of the module: every user-facing
// string (method, objective direction, constraint signs, variable bounds)
// is translated into its typed selector exactly once, here. The solver
// packages never see strings.
//
// Schema:
//
//	method: simplex | bland | two_phase | geometric   (default simplex)
//	objective: min | max                              (default min)
//	form: general | standard | canonical              (advisory, optional)
//	c: [ ... ]            # objective coefficients
//	A: [ [ ... ], ... ]   # constraint rows
//	b: [ ... ]            # right-hand side
//	signs: [ "<=", ">=", "=" ... ]
//	bounds: [ ">=", "<=", "free", "=0" ... ]          (optional; default all ">=")
//	max_iterations: 1000                              (optional)
//
// Errors (sentinel, wrapped with the offending token):
//
//	– ErrUnknownMethod, ErrUnknownObjective, ErrUnknownForm,
//	  ErrUnknownSign, ErrUnknownBound.
package probfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/letruongzzio/linprog/lp"
)

// Sentinel errors for unrecognized tokens in a problem file.
var (
	ErrUnknownMethod    = errors.New("probfile: unknown method")
	ErrUnknownObjective = errors.New("probfile: unknown objective direction")
	ErrUnknownForm      = errors.New("probfile: unknown problem form")
	ErrUnknownSign      = errors.New("probfile: unknown constraint sign")
	ErrUnknownBound     = errors.New("probfile: unknown variable bound")
)

// Spec is one fully translated problem definition: the typed problem, the
// requested method, and the optional iteration cap (0 means the solver
// default applies).
type Spec struct {
	Problem       lp.Problem
	Method        lp.Method
	MaxIterations int
}

// file mirrors the YAML schema before translation.
type file struct {
	Method        string      `yaml:"method"`
	Objective     string      `yaml:"objective"`
	Form          string      `yaml:"form"`
	C             []float64   `yaml:"c"`
	A             [][]float64 `yaml:"A"`
	B             []float64   `yaml:"b"`
	Signs         []string    `yaml:"signs"`
	Bounds        []string    `yaml:"bounds"`
	MaxIterations int         `yaml:"max_iterations"`
}

// Load reads and parses the YAML problem definition at path.
func Load(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("probfile: %w", err)
	}

	return Parse(data)
}

// Parse translates a YAML problem definition into a Spec. The resulting
// Problem passes its own defensive Validate; deeper validation remains the
// solver's concern.
func Parse(data []byte) (Spec, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Spec{}, fmt.Errorf("probfile: %w", err)
	}

	method, err := parseMethod(f.Method)
	if err != nil {
		return Spec{}, err
	}
	dir, err := parseObjective(f.Objective)
	if err != nil {
		return Spec{}, err
	}
	if err = checkForm(f.Form); err != nil {
		return Spec{}, err
	}

	p := lp.Problem{
		Direction: dir,
		C:         f.C,
		A:         f.A,
		B:         f.B,
	}
	for _, s := range f.Signs {
		sign, serr := parseSign(s)
		if serr != nil {
			return Spec{}, serr
		}
		p.Signs = append(p.Signs, sign)
	}
	for _, b := range f.Bounds {
		bound, berr := parseBound(b)
		if berr != nil {
			return Spec{}, berr
		}
		p.Bounds = append(p.Bounds, bound)
	}

	if err = p.Validate(); err != nil {
		return Spec{}, fmt.Errorf("probfile: %w", err)
	}

	return Spec{Problem: p, Method: method, MaxIterations: f.MaxIterations}, nil
}

func parseMethod(s string) (lp.Method, error) {
	switch s {
	case "", "simplex":
		return lp.Simplex, nil
	case "bland":
		return lp.Bland, nil
	case "two_phase":
		return lp.TwoPhase, nil
	case "geometric":
		return lp.Geometric, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

func parseObjective(s string) (lp.Direction, error) {
	switch s {
	case "", "min":
		return lp.Minimize, nil
	case "max":
		return lp.Maximize, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownObjective, s)
	}
}

// checkForm accepts the advisory problem-form label. The engine always
// normalizes to its own standard form, so the label carries no behavior;
// unknown labels are still rejected to catch typos at the boundary.
func checkForm(s string) error {
	switch s {
	case "", "general", "standard", "canonical":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownForm, s)
	}
}

func parseSign(s string) (lp.Sign, error) {
	switch s {
	case "<=":
		return lp.LessEq, nil
	case ">=":
		return lp.GreaterEq, nil
	case "=":
		return lp.Equal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSign, s)
	}
}

func parseBound(s string) (lp.Bound, error) {
	switch s {
	case ">=":
		return lp.NonNegative, nil
	case "<=":
		return lp.NonPositive, nil
	case "free":
		return lp.Free, nil
	case "=0":
		return lp.Zero, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBound, s)
	}
}
