package bril

import (
	"errors"
	"fmt"
)

// Kind classifies why a program failed to load.
type Kind int

const (
	KindIO     Kind = iota // file could not be read
	KindSyntax             // contents are not valid JSON
	KindSchema             // valid JSON with the wrong shape
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "IOError"
	case KindSyntax:
		return "SyntaxError"
	case KindSchema:
		return "SchemaError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// LoadError is returned by Load and Parse for every failure.
type LoadError struct {
	Kind Kind
	Path string

	// Index is the position in "functions" the failure refers to, or -1.
	Index int

	// Line and Column are 1-based and only set for KindSyntax.
	Line   int
	Column int

	Msg string
	Err error
}

func (e *LoadError) Error() string {
	return e.Msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a *LoadError of the given kind.
func IsKind(err error, kind Kind) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Kind == kind
}

func ioError(path string, err error) *LoadError {
	return &LoadError{
		Kind:  KindIO,
		Path:  path,
		Index: -1,
		Msg:   fmt.Sprintf("could not read %s: %v", path, err),
		Err:   err,
	}
}

func syntaxError(path string, line, col int, err error) *LoadError {
	return &LoadError{
		Kind:   KindSyntax,
		Path:   path,
		Index:  -1,
		Line:   line,
		Column: col,
		Msg:    fmt.Sprintf("invalid JSON in %s at line %d, col %d: %v", path, line, col, err),
		Err:    err,
	}
}

func schemaError(path string, index int, format string, args ...any) *LoadError {
	return &LoadError{
		Kind:  KindSchema,
		Path:  path,
		Index: index,
		Msg:   fmt.Sprintf(format, args...),
	}
}
