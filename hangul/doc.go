/*
Package hangul classifies code-points for Braille transcription.

Every code-point of an input text falls into exactly one of a small set of
categories: a complete Hangul syllable, a bare jamo (compatibility jamo
U+3131…U+3163), a Latin letter, a digit, white space, a punctuation symbol
or a mathematical symbol. Anything else is not supported and results in a
kobraille.ClassificationError.

Syllables are decomposed arithmetically, following the Unicode Standard,
section 3.12:

   index = s - 0xAC00
   jong  = index % 28
   jung  = (index / 28) % 21
   cho   = index / (28*21)

where jong == 0 denotes a syllable without final consonant. The
decomposition is exact and total over the syllable block.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package hangul

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
