package source

import (
	"bufio"
	"io"
)

// lineReader is a specialized reader that ensures only entire newline-delimited lines are
// read at a time. This is useful when attempting to parse a file that is being actively
// written to as a CSV, as you don't actually attempt to parse any partial lines.
type lineReader struct {
	r *bufio.Reader
	// partial holds an unterminated line seen at EOF.
	partial []byte
	// pending holds the part of a complete line that did not fit the
	// caller's buffer.
	pending []byte
	// final treats EOF as the end of the data, so an unterminated last line
	// is read as a line of its own.
	final bool
}

var _ io.Reader = (*lineReader)(nil)

// NewLineReader returns a reader for a file that may still be growing: an
// unterminated line at EOF is held back until its newline arrives.
func NewLineReader(r io.Reader) io.Reader {
	return newLineReader(r, false)
}

func newLineReader(r io.Reader, final bool) *lineReader {
	return &lineReader{
		r:     bufio.NewReader(r),
		final: final,
	}
}

// unterminated reports whether a partial line was held back at EOF.
func (l *lineReader) unterminated() bool {
	return len(l.partial) > 0
}

func (l *lineReader) Read(b []byte) (int, error) {
	if len(l.pending) > 0 {
		n := copy(b, l.pending)
		l.pending = l.pending[n:]
		return n, nil
	}
	data, err := l.r.ReadBytes(byte('\n'))
	if err != nil {
		l.partial = append(l.partial, data...)
		if !l.final || len(l.partial) == 0 {
			return 0, io.EOF
		}
		data, l.partial = l.partial, nil
		n := copy(b, data)
		l.pending = data[n:]
		return n, nil
	}
	if len(l.partial) > 0 {
		data = append(l.partial, data...)
		l.partial = nil
	}
	n := copy(b, data)
	l.pending = data[n:]
	return n, nil
}
