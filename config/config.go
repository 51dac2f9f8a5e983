package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ringtour/tour"
)

var (
	// ErrInvalidConfig wraps every shape or syntax error of a problem file.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// validate is the shared validator; field names follow the yaml tags.
	validate = newValidator()
)

// Output formats understood by package report.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// File is one problem definition plus the strategies to run on it.
type File struct {
	Lowest     int      `yaml:"lowest"`
	Highest    int      `yaml:"highest"`
	Initial    int      `yaml:"initial"`
	Points     []int    `yaml:"points"`
	Strategies []string `yaml:"strategies" validate:"required,min=1,unique,dive,strategy"`
	Format     string   `yaml:"format" validate:"required,oneof=text json"`
}

// Default returns the demo instance: [-21, 11] from 0 over ten points,
// solved by the heuristic and the exhaustive search, rendered as text.
func Default() File {
	return File{
		Lowest:     -21,
		Highest:    11,
		Initial:    0,
		Points:     []int{-21, -11, -6, -5, -1, 0, 1, 5, 7, 11},
		Strategies: []string{"heuristic", "permutation"},
		Format:     FormatText,
	}
}

// Load reads and parses the problem file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (File, error) {
	f := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := f.Validate(); err != nil {
		return File{}, err
	}

	return f, nil
}

// Validate checks the file shape.
func (f File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// StrategyList resolves strategy names in file order.
func (f File) StrategyList() ([]tour.Strategy, error) {
	out := make([]tour.Strategy, 0, len(f.Strategies))
	for _, name := range f.Strategies {
		s, err := tour.ParseStrategy(name)
		if err != nil {
			return nil, fmt.Errorf("%w: strategy %q: %v", ErrInvalidConfig, name, err)
		}
		out = append(out, s)
	}

	return out, nil
}

// Problem builds the tour problem described by f.
func (f File) Problem() (*tour.Problem, error) {
	return tour.Build(f.Lowest, f.Highest, f.Initial, f.Points)
}

// ParsePoints parses a comma- or space-separated list of integers.
// An empty string yields an empty list.
func ParsePoints(s string) ([]int, error) {
	fields := splitList(s)
	out := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: point %q is not an integer", ErrInvalidConfig, field)
		}
		out = append(out, v)
	}

	return out, nil
}

// ParseStrategies splits a comma- or space-separated list of names.
func ParseStrategies(s string) []string { return splitList(s) }

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
}

// newValidator registers the strategy tag and yaml field naming.
// It runs at package init and panics if the tag cannot be registered.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	err := v.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
		_, err := tour.ParseStrategy(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(fmt.Sprintf("config: register strategy validation: %v", err))
	}

	return v
}

// formatValidationError converts validator errors into one readable error
// wrapping ErrInvalidConfig.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "File.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+": required")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s: at least %s entries", field, fe.Param()))
		case "unique":
			msgs = append(msgs, field+": entries must be unique")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s: %q is not one of [%s]", field, fe.Value(), fe.Param()))
		case "strategy":
			msgs = append(msgs, fmt.Sprintf("%s: unknown strategy %q", field, fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", field, fe.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
