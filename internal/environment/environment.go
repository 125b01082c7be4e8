package environment

import (
	"fmt"
	"slices"
	"strings"
)

type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: '%s'", e.Name)
}

// Environment is the single global variable table of a run. Blocks do not
// open scopes, and names are case-sensitive.
type Environment struct {
	variables map[string]float64
}

func New() *Environment {
	return &Environment{
		variables: make(map[string]float64),
	}
}

// Get never defaults: reading a name that was not set is an error.
func (e *Environment) Get(name string) (float64, error) {
	value, ok := e.variables[name]
	if !ok {
		return 0, &UndefinedVariableError{Name: name}
	}

	return value, nil
}

func (e *Environment) Set(name string, value float64) {
	e.variables[name] = value
}

func (e *Environment) Has(name string) bool {
	_, ok := e.variables[name]
	return ok
}

func (e *Environment) Len() int {
	return len(e.variables)
}

func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.variables))
	for name := range e.variables {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func (e *Environment) String() string {
	var sb strings.Builder
	for i, name := range e.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%g", name, e.variables[name])
	}

	return sb.String()
}
