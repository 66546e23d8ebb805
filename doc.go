/*
Package kobraille is about transcribing Korean text into Korean Braille.

Description

The Korean Braille orthography (한국 점자 규정) describes how Hangul, digits,
Latin letters and punctuation are written in 6-dot Braille cells. Beyond a
plain mapping of letters to cells, the standard defines dozens of numbered
rules which interact with each other: syllable abbreviations, markers for
digit runs and capital letters, brackets for foreign script inside Korean
text, and separators which keep a reader from mis-parsing vowel boundaries.

A cell is represented as an integer 0…63, where dot k of the cell contributes
bit k-1:

   dot 1 = 1   dot 4 = 8
   dot 2 = 2   dot 5 = 16
   dot 3 = 4   dot 6 = 32

Adding 0x2800 to a cell code gives the corresponding glyph from the Unicode
Braille Patterns block.

BSD License

Copyright (c) 2024, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The transcription engine sits in sub-package braille. It uses classification
of code-points from sub-package hangul, the cell tables of sub-package codebook
and the word abbreviation dictionary of sub-package shortcut.

Base package kobraille provides the vocabulary shared by all of these: the
Cell type, names for the marker cells the rules insert, the error types, and
pooled scratch buffers for collecting cells.

Errors

Transcription is all-or-nothing. Any error aborts the whole call; there is no
partial output. Errors are one of

   ClassificationError   a code-point no category exists for
   DecompositionError    a component index out of range reached a cell table
   LookupError           a cell table has no entry for a valid key
   InternalError         a rule table contradicts itself

*/
package kobraille

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
