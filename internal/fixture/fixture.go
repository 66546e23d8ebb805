/*
Package fixture reads end-to-end test cases for Braille transcription.

Test cases live in text files in directory testdata of this package, one
case per line:

   # comment
   input;category;expected;rule

where expected is the sequence of cells, written as concatenated decimal
cell codes (see kobraille.Cells.Digits), and rule cites the section of the
orthography the case is taken from. The input may contain ';' itself; the
last three fields are split off from the right.
*/
package fixture

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Case is a single test case.
type Case struct {
	Line     int
	Input    string
	Category string
	Expected string // concatenated decimal cell codes
	Rule     string
}

func (c Case) String() string {
	return fmt.Sprintf("#%d %q (%s, %s)", c.Line, c.Input, c.Category, c.Rule)
}

// Scanner iterates over the test cases of a fixture file.
type Scanner struct {
	scanner *bufio.Scanner
	line    int
	current Case
	err     error
}

// NewScanner creates a scanner reading test cases from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{scanner: bufio.NewScanner(r)}
}

// Scan advances to the next test case, skipping comments and empty lines.
// It returns false at the end of input or on a malformed line.
func (sc *Scanner) Scan() bool {
	if sc.err != nil {
		return false
	}
	for sc.scanner.Scan() {
		sc.line++
		text := strings.TrimSpace(sc.scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		parts := strings.Split(text, ";")
		if len(parts) < 4 {
			sc.err = fmt.Errorf("fixture line %d: expected 4 fields, have %d", sc.line, len(parts))
			return false
		}
		n := len(parts)
		sc.current = Case{
			Line:     sc.line,
			Input:    strings.Join(parts[:n-3], ";"),
			Category: strings.TrimSpace(parts[n-3]),
			Expected: strings.TrimSpace(parts[n-2]),
			Rule:     strings.TrimSpace(parts[n-1]),
		}
		return true
	}
	return false
}

// Case returns the current test case.
func (sc *Scanner) Case() Case {
	return sc.current
}

// Err returns the first error encountered.
func (sc *Scanner) Err() error {
	if sc.err != nil {
		return sc.err
	}
	return sc.scanner.Err()
}

// ReadFile reads all test cases of a fixture file.
func ReadFile(filename string) ([]Case, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cases []Case
	sc := NewScanner(f)
	for sc.Scan() {
		cases = append(cases, sc.Case())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(filename), err)
	}
	return cases, nil
}

// Path returns the path of a fixture file.
func Path(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "testdata", file)
}

// Files lists all fixture files.
func Files() ([]string, error) {
	return filepath.Glob(Path("*.txt"))
}
