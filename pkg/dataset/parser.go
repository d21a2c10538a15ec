// Package dataset reads and writes point files and provides demo curves.
//
// A point file is UTF-8 text. A line
//
//	series "<name>" [#color] [width]
//
// starts a new series; the name may be left unquoted when it has no spaces. Every
// other non-empty line holds three coordinates separated by whitespace or commas.
// '#' starts a comment on data lines. Points before the first series line belong
// to a series named after the file.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/goplot3d/pkg/geometry"
	"github.com/philipparndt/goplot3d/pkg/series"
	"github.com/philipparndt/goplot3d/pkg/style"
)

// ErrSyntax is wrapped by every parse error
var ErrSyntax = errors.New("syntax error")

// Parse reads a point file
func Parse(filename string) ([]*series.Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return ParseReader(file, name)
}

// ParseReader reads point file content; defaultName names points that precede any series line
func ParseReader(reader io.Reader, defaultName string) ([]*series.Series, error) {
	scanner := bufio.NewScanner(reader)
	var out []*series.Series
	var current *series.Series
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if header, ok := strings.CutPrefix(line, "series"); ok && (header == "" || header[0] == ' ' || header[0] == '\t') {
			s, err := parseHeader(strings.TrimSpace(header))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			current = s
			out = append(out, s)
			continue
		}

		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) == 0 {
			continue
		}

		point, err := parsePoint(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if current == nil {
			current = series.New(defaultName)
			out = append(out, current)
		}
		current.Append(point)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read point file: %w", err)
	}
	return out, nil
}

func parseHeader(header string) (*series.Series, error) {
	var name string
	if strings.HasPrefix(header, `"`) {
		quoted, err := strconv.QuotedPrefix(header)
		if err != nil {
			return nil, fmt.Errorf("%w: unterminated series name", ErrSyntax)
		}
		name, _ = strconv.Unquote(quoted)
		header = header[len(quoted):]
	} else {
		fields := strings.Fields(header)
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: series without name", ErrSyntax)
		}
		name = fields[0]
		header = strings.TrimPrefix(header, fields[0])
	}

	s := series.New(name)
	for _, field := range strings.Fields(header) {
		if strings.HasPrefix(field, "#") {
			c, err := style.ParseColor(field)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			s.SetColor(c)
			continue
		}
		width, err := strconv.ParseFloat(field, 64)
		if err != nil || width <= 0 {
			return nil, fmt.Errorf("%w: invalid line width %q", ErrSyntax, field)
		}
		s.SetLineWidth(width)
	}
	return s, nil
}

func parsePoint(fields []string) (geometry.Vector3, error) {
	if len(fields) != 3 {
		return geometry.Vector3{}, fmt.Errorf("%w: expected 3 coordinates, got %d", ErrSyntax, len(fields))
	}
	var v [3]float64
	for i, f := range fields {
		value, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("%w: invalid coordinate %q", ErrSyntax, f)
		}
		v[i] = value
	}
	return geometry.NewVector3(v[0], v[1], v[2]), nil
}

// Write stores curves in point file format
func Write(w io.Writer, curves []*series.Series) error {
	bw := bufio.NewWriter(w)
	for _, s := range curves {
		fmt.Fprintf(bw, "series %s %s %s\n", strconv.Quote(s.Name()), style.FormatColor(s.Color()), formatFloat(s.LineWidth()))
		for _, p := range s.Points() {
			fmt.Fprintf(bw, "%s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write point file: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
