/*
Package codebook holds the cell tables of the Korean Braille orthography.

Every function of this package maps a single, already classified unit to its
cells: an initial consonant, a medial vowel, a final consonant, a bare jamo,
a whole syllable, a digit, a Latin letter or a symbol. Lookups are pure and
safe for concurrent use. Functions validate their arguments independently of
the caller: an index out of range yields a *kobraille.DecompositionError, a
valid key without a table entry yields a *kobraille.LookupError.

Rule numbers in comments refer to the sections (항) of 한국 점자 규정.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package codebook

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
