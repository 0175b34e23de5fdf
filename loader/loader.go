package loader

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const maxLineBytes = 16 << 20

// IsLegacyHeader reports whether line1 and line2 each hold exactly one
// whitespace-delimited token.
func IsLegacyHeader(line1, line2 string) bool {
	return len(strings.Fields(line1)) == 1 && len(strings.Fields(line2)) == 1
}

// LoadFile opens path and calls Load on it.
func LoadFile(path string, opts ...Option) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loader: open input")
	}
	defer f.Close()

	inst, err := Load(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "loader: %s", path)
	}

	return inst, nil
}

// Load parses r into an Instance.
func Load(r io.Reader, opts ...Option) (*Instance, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	inst := &Instance{
		Subsets:      make([][]int, 0, len(lines)),
		MaxElement:   -1,
		DeclaredSets: -1,
	}

	start := 0
	if len(lines) >= 2 && IsLegacyHeader(lines[0], lines[1]) {
		inst.Legacy = true
		if !o.ForceNewFormat {
			if inst.MaxElement, err = parseHeader(lines[0], 1); err != nil {
				return nil, err
			}
			if inst.DeclaredSets, err = parseHeader(lines[1], 2); err != nil {
				return nil, err
			}
			inst.HeaderStripped = true
			start = 2
		}
	}

	for i := start; i < len(lines); i++ {
		s, err := parseLine(lines[i], i+1)
		if err != nil {
			return nil, err
		}
		inst.Subsets = append(inst.Subsets, s)
	}

	return inst, nil
}

// readLines splits r into lines without their terminators.
func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "loader: read input")
	}

	return lines, nil
}

func parseHeader(line string, lineNo int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || v < 0 {
		return 0, errors.Wrapf(ErrBadHeader, "line %d: %q", lineNo, strings.TrimSpace(line))
	}

	return v, nil
}

func parseLine(line string, lineNo int) ([]int, error) {
	fields := strings.Fields(line)
	s := make([]int, 0, len(fields))
	for _, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil || v < 0 {
			return nil, errors.Wrapf(ErrMalformedLine, "line %d: %q is not a non-negative integer", lineNo, tok)
		}
		s = append(s, v)
	}

	return s, nil
}
