/*
Package shortcut implements word abbreviations of Korean Braille.

Some frequent words are written with abbreviations standing for the whole
word (한국 점자 규정, rule 18). An abbreviation applies when the word starts
with one of the dictionary entries; the remainder of the word, if any, is
transcribed on its own:

   그래서      ⠁⠎
   그래서는    ⠁⠎ + transcription of "는"

Matching is greedy: of all entries which are a prefix of a word, the longest
one wins. The default dictionary holds the conjunctions of rule 18. Clients
may build matchers with other dictionaries using New.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package shortcut

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
