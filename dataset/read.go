package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineSize bounds a single text line (high-dimensional rows are long).
const maxLineSize = 16 << 20

// ErrUnterminatedHeader is returned when a label file starts with a header
// that is not closed by a line of dashes.
var ErrUnterminatedHeader = errors.New("dataset: label header not terminated by a dash line")

// ErrRaggedRow indicates a vector row whose width differs from the first row.
type ErrRaggedRow struct {
	Line     int
	Expected int
	Actual   int
}

func (e *ErrRaggedRow) Error() string {
	return fmt.Sprintf("dataset: line %d: expected %d values, got %d", e.Line, e.Expected, e.Actual)
}

// ErrSyntax indicates a token that is not a valid number.
type ErrSyntax struct {
	Line int
	Text string
	Err  error
}

func (e *ErrSyntax) Error() string {
	return fmt.Sprintf("dataset: line %d: invalid number %q: %v", e.Line, e.Text, e.Err)
}

func (e *ErrSyntax) Unwrap() error { return e.Err }

type lineScanner struct {
	*bufio.Scanner
	line int
}

func newLineScanner(r io.Reader) *lineScanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineScanner{Scanner: s}
}

// next returns the next non-blank line that is not a '#' comment.
func (s *lineScanner) next() (string, bool) {
	for s.Scan() {
		s.line++
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return text, true
	}
	return "", false
}

// ReadVectors parses whitespace-separated rows of numbers, one vector per
// line. Blank lines and lines starting with '#' are skipped. All rows must
// have the width of the first one.
func ReadVectors(r io.Reader) ([][]float64, error) {
	s := newLineScanner(r)

	var (
		vectors [][]float64
		dim     = -1
	)
	for {
		text, ok := s.next()
		if !ok {
			break
		}

		fields := strings.Fields(text)
		if dim < 0 {
			dim = len(fields)
		} else if len(fields) != dim {
			return nil, &ErrRaggedRow{Line: s.line, Expected: dim, Actual: len(fields)}
		}

		vec := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &ErrSyntax{Line: s.line, Text: f, Err: err}
			}
			vec[i] = v
		}
		vectors = append(vectors, vec)
	}

	if err := s.Err(); err != nil {
		return nil, err
	}
	return vectors, nil
}

// ReadLabels parses one integer label per line. Partition files may start
// with a free-text header (e.g. "VQ PARTITIONING FILE"); when the first
// line is not an integer, everything up to and including the first line
// made only of dashes is skipped.
func ReadLabels(r io.Reader) ([]int, error) {
	s := newLineScanner(r)

	var labels []int
	first := true
	for {
		text, ok := s.next()
		if !ok {
			break
		}

		l, err := strconv.Atoi(text)
		if err != nil && first {
			first = false
			if isDashLine(text) {
				continue
			}
			if err := skipHeader(s); err != nil {
				return nil, err
			}
			continue
		}
		first = false
		if err != nil {
			return nil, &ErrSyntax{Line: s.line, Text: text, Err: err}
		}
		labels = append(labels, l)
	}

	if err := s.Err(); err != nil {
		return nil, err
	}
	return labels, nil
}

func skipHeader(s *lineScanner) error {
	for s.Scan() {
		s.line++
		if isDashLine(strings.TrimSpace(s.Text())) {
			return nil
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	return ErrUnterminatedHeader
}

func isDashLine(text string) bool {
	return text != "" && strings.Trim(text, "-") == ""
}
