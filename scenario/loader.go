package scenario

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

const builtinDir = "builtin"

var validate = validator.New()

// Parse decodes, validates and test-builds a scenario document.
// Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalid, err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, formatValidationError(err))
	}
	if _, _, err := s.Graphs(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses the scenario at path.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(data)
}

// Load returns the built-in scenario called name.
func Load(name string) (*Scenario, error) {
	data, err := builtinFS.ReadFile(builtinDir + "/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrNotFound, name, strings.Join(List(), ", "))
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("built-in %q: %w", name, err)
	}
	return s, nil
}

// List returns the names of all built-in scenarios, sorted.
func List() []string {
	entries, _ := builtinFS.ReadDir(builtinDir)
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// formatValidationError reports the first failed rule in a readable form.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	e := verrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", field)
	case "min":
		return fmt.Errorf("%s: must be at least %s", field, e.Param())
	case "max":
		return fmt.Errorf("%s: must not exceed %s", field, e.Param())
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s], got %v", field, e.Param(), e.Value())
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}
