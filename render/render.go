// Package render prints solution lists in the classic console layout:
// a "Solutions:" header followed by one line per solution, holding the
// subset indices shifted to 1-based numbering and separated by spaces.
// The empty solution prints as a blank line.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Header is the line printed before the solutions.
const Header = "Solutions:"

// Option configures WriteSolutions.
type Option func(*Options)

// Options holds rendering settings.
type Options struct {
	// Color highlights the header with ANSI escapes.
	Color bool
}

// WithColor turns header highlighting on or off.
func WithColor(on bool) Option {
	return func(o *Options) {
		o.Color = on
	}
}

// FormatSolution renders indices 1-based and space-separated.
func FormatSolution(indices []int) string {
	var sb strings.Builder
	for i, x := range indices {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(x + 1))
	}

	return sb.String()
}

// WriteSolutions writes the header and every solution, in order, to w.
func WriteSolutions(w io.Writer, sols [][]int, opts ...Option) error {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}

	head := color.New(color.FgGreen, color.Bold)
	if o.Color {
		head.EnableColor()
	} else {
		head.DisableColor()
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, head.Sprint(Header)); err != nil {
		return fmt.Errorf("render: header: %w", err)
	}
	for _, s := range sols {
		if _, err := fmt.Fprintln(bw, FormatSolution(s)); err != nil {
			return fmt.Errorf("render: solution: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}

	return nil
}
