package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"git.sr.ht/~whereswaldon/ratecurve/geometry"
)

// ErrFormat is wrapped by every error describing a malformed curve file.
var ErrFormat = errors.New("malformed curve file")

const currentKey = "current"

// Parse reads a complete curve file. The first record names the two axes,
// every following record is an "x, y" sample in ascending x order, and a
// record starting with "current" sets the reference x. Blank lines and
// lines starting with '#' are ignored. The last line does not need a
// newline.
func Parse(r io.Reader) (Curve, error) {
	return parse(newLineReader(r, true))
}

// ParseGrowing reads a curve file that may be in the middle of being
// appended to. An unterminated last line is not parsed; complete is false
// when one was held back.
func ParseGrowing(r io.Reader) (c Curve, complete bool, err error) {
	lr := newLineReader(r, false)
	c, err = parse(lr)
	return c, !lr.unterminated(), err
}

func parse(lr *lineReader) (Curve, error) {
	csvReader := csv.NewReader(lr)
	csvReader.TrimLeadingSpace = true
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = -1

	var c Curve
	headings, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Curve{}, fmt.Errorf("%w: missing heading record", ErrFormat)
		}
		return Curve{}, fmt.Errorf("failed reading headings: %w", err)
	}
	if len(headings) != 2 {
		return Curve{}, fmt.Errorf("%w: line 1: expected 2 headings, got %d", ErrFormat, len(headings))
	}
	c.XName, c.YName = strings.TrimSpace(headings[0]), strings.TrimSpace(headings[1])

	for {
		rec, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		if err != nil {
			return Curve{}, fmt.Errorf("failed reading record: %w", err)
		}
		line, _ := csvReader.FieldPos(0)
		if len(rec) != 2 {
			return Curve{}, fmt.Errorf("%w: line %d: expected 2 fields, got %d", ErrFormat, line, len(rec))
		}
		if strings.TrimSpace(rec[0]) == currentKey {
			x, err := parseFloat(rec[1])
			if err != nil {
				return Curve{}, fmt.Errorf("%w: line %d: current: %v", ErrFormat, line, err)
			}
			c.Current, c.HasCurrent = x, true
			continue
		}
		x, err := parseFloat(rec[0])
		if err != nil {
			return Curve{}, fmt.Errorf("%w: line %d: x: %v", ErrFormat, line, err)
		}
		y, err := parseFloat(rec[1])
		if err != nil {
			return Curve{}, fmt.Errorf("%w: line %d: y: %v", ErrFormat, line, err)
		}
		if !c.Insert(geometry.Pt(x, y)) {
			return Curve{}, fmt.Errorf("%w: line %d: x=%v does not follow the previous sample", ErrFormat, line, x)
		}
	}
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
