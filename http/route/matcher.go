package route

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/switchyard-web/switchyard"
)

// A Matcher is a path template compiled into its "/"-delimited segments.
// A segment beginning with ":" is named and matches any concrete value;
// every other segment matches only itself.
type Matcher struct {
	segments []segment
}

type segment struct {
	value string
	named bool
}

// NewMatcher compiles the path template.
func NewMatcher(template string) Matcher {
	toks := strings.Split(template, "/")
	segs := make([]segment, len(toks))
	for i, tok := range toks {
		if strings.HasPrefix(tok, ":") {
			segs[i] = segment{value: tok[1:], named: true}
			continue
		}

		segs[i] = segment{value: tok}
	}

	return Matcher{segments: segs}
}

// Matches asserts whether path structurally matches the compiled template.
// Paths with a different segment count never match,
// including those missing only a trailing named segment.
func (m Matcher) Matches(path string) bool {
	parts := strings.Split(path, "/")
	if len(parts) != len(m.segments) {
		return false
	}

	for i, seg := range m.segments {
		if seg.named {
			continue
		}

		if seg.value != parts[i] {
			return false
		}
	}

	return true
}

// Args extracts the named segments of path as integers keyed by segment name.
// A non-numeric value in a named position returns ErrBadPathArgument;
// identifiers are integers by contract.
func (m Matcher) Args(path string) (map[string]int, error) {
	parts := strings.Split(path, "/")
	args := make(map[string]int)
	for i, seg := range m.segments {
		if !seg.named || i >= len(parts) {
			continue
		}

		val, err := strconv.Atoi(parts[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer value for %q", switchyard.ErrBadPathArgument, parts[i], seg.value)
		}

		args[seg.value] = val
	}

	return args, nil
}
