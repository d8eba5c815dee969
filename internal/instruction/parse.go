package instruction

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/shinji-kodama/reactor-reboot/internal/geom"
	"github.com/shinji-kodama/reactor-reboot/internal/region"
)

// lineRegex matches one instruction. Submatches 2..7 are the x, y and z
// bounds in order.
var lineRegex = regexp.MustCompile(`^(on|off) x=(-?\d+)\.\.(-?\d+),y=(-?\d+)\.\.(-?\d+),z=(-?\d+)\.\.(-?\d+)$`)

// ParseError reports a line that does not match the instruction grammar.
type ParseError struct {
	// Line is the 1-based line number, or 0 when parsing a lone string.
	Line int

	// Text is the offending line as read.
	Text string

	// Err is the underlying cause, if any (e.g. an out-of-range integer).
	Err error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("invalid instruction %q", e.Text)
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts a single line into an Instruction.
// Surrounding whitespace is ignored.
func Parse(line string) (region.Instruction, error) {
	text := strings.TrimSpace(line)
	m := lineRegex.FindStringSubmatch(text)
	if m == nil {
		return region.Instruction{}, &ParseError{Text: line}
	}

	var bounds [6]int64
	for i := range bounds {
		v, err := strconv.ParseInt(m[i+2], 10, 64)
		if err != nil {
			return region.Instruction{}, &ParseError{Text: line, Err: err}
		}
		bounds[i] = v
	}

	var axes [3]geom.Interval
	for i, name := range []string{"x", "y", "z"} {
		from, to := bounds[2*i], bounds[2*i+1]
		if from > to {
			return region.Instruction{}, &ParseError{
				Text: line,
				Err:  fmt.Errorf("%s range %d..%d is empty", name, from, to),
			}
		}
		axes[i] = geom.NewInterval(from, to)
	}

	return region.Instruction{
		On:  m[1] == "on",
		Box: geom.NewBox(axes[0], axes[1], axes[2]),
	}, nil
}

// Scan returns a lazy sequence of the instructions read from r. Blank lines
// are skipped. The sequence yields a non-nil error at most once, as its last
// element, for either a read failure or a *ParseError.
func Scan(r io.Reader) iter.Seq2[region.Instruction, error] {
	return func(yield func(region.Instruction, error) bool) {
		scanner := bufio.NewScanner(r)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}

			in, err := Parse(line)
			if err != nil {
				if pe, ok := err.(*ParseError); ok {
					pe.Line = lineNo
				}
				yield(region.Instruction{}, err)
				return
			}
			if !yield(in, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(region.Instruction{}, fmt.Errorf("failed to read instructions: %w", err))
		}
	}
}

// Format renders an instruction in the input grammar, so that
// Parse(Format(in)) == in.
func Format(in region.Instruction) string {
	verb := "off"
	if in.On {
		verb = "on"
	}
	return verb + " " + in.Box.String()
}
