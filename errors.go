package kobraille

import (
	"errors"
	"fmt"
)

// ClassificationError flags a code-point for which no character category
// exists.
type ClassificationError struct {
	Rune rune
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("kobraille: cannot classify %#U", e.Rune)
}

// DecompositionError flags a component index outside of its valid range
// reaching a cell table.
type DecompositionError struct {
	Component string // "choseong", "jungseong", "jongseong", …
	Index     int
}

func (e *DecompositionError) Error() string {
	return fmt.Sprintf("kobraille: %s index %d out of range", e.Component, e.Index)
}

// LookupError flags a cell table without an entry for a valid key.
type LookupError struct {
	Table string
	Key   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("kobraille: no %s cells for %q", e.Table, e.Key)
}

// InternalError flags an inconsistency between rule tables, or a word
// abbreviation which does not shorten its word. It should never surface for
// well-formed tables.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "kobraille: internal error: " + e.Msg
}

// IsClassification is true if err is or wraps a ClassificationError.
func IsClassification(err error) bool {
	var ce *ClassificationError
	return errors.As(err, &ce)
}

// IsDecomposition is true if err is or wraps a DecompositionError.
func IsDecomposition(err error) bool {
	var de *DecompositionError
	return errors.As(err, &de)
}

// IsLookup is true if err is or wraps a LookupError.
func IsLookup(err error) bool {
	var le *LookupError
	return errors.As(err, &le)
}

// IsInternal is true if err is or wraps an InternalError.
func IsInternal(err error) bool {
	var ie *InternalError
	return errors.As(err, &ie)
}
