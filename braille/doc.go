/*
Package braille transcribes Korean text into Korean Braille cells.

Transcription is a single pass over a text. The text is split into words at
white space. A prescan collects flags for every word (all capitals, all
letters, contains a syllable) and for the text as a whole (contains Hangul
at all). Words are then transcribed one after the other: first by looking
for a word abbreviation (see package shortcut), then code-point by
code-point, applying the numbered rules of the orthography
(한국 점자 규정) which depend on context:

   rule 8–10   bare jamo, standing alone or attached to a word
   rule 11, 12 separator between vowels which would otherwise merge
   rule 14     no abbreviation of 나 다 … 하 before a vowel
   rule 28     capital indicators for letters, words and phrases
   rule 31     brackets around Roman letters inside Korean text
   rule 40–44  number sign, digit separators, blank after a number

Cells of a single unit (a syllable, a letter, a symbol) come from package
codebook.

Usage

   cells, err := braille.Encode("안녕하세요")
   // cells.String() == "⠣⠒⠉⠻⠚⠠⠝⠬"

Transcription is all-or-nothing: any code-point which cannot be classified
aborts the call with a *kobraille.ClassificationError, and there is no
partial output. Calls are independent of each other and may run
concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package braille

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
