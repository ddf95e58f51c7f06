package source

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func expectToRead(t *testing.T, reader io.Reader, expected []byte) {
	t.Helper()
	var scratch [1024]byte
	n, err := reader.Read(scratch[:])
	if err != nil {
		t.Errorf("expected read to succeed, got: %v", err)
	} else if !bytes.Equal(scratch[:n], expected) {
		t.Errorf("expected read to yield %q, got: %q", expected, scratch[:n])
	}
}

func expectReadEOF(t *testing.T, reader io.Reader) {
	t.Helper()
	var scratch [1024]byte
	n, err := reader.Read(scratch[:])
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected read to give EOF, got: %v", err)
	} else if n != 0 {
		t.Errorf("expected read to read nothing, read %q", scratch[:n])
	}
}

func TestLineReader(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	first := "utilization, apr\n"
	second := "0, 0\n"
	buf.WriteString(first)
	buf.WriteString(second)
	l := NewLineReader(buf)
	expectToRead(t, l, []byte(first))
	expectToRead(t, l, []byte(second))
	third := "0.5, "
	buf.WriteString(third)
	expectReadEOF(t, l)
	fourth := "0.1\n"
	buf.WriteString(fourth)
	expectToRead(t, l, []byte(third+fourth))
	buf.WriteString("1")
	expectReadEOF(t, l)
	buf.WriteString(", 0")
	expectReadEOF(t, l)
	buf.WriteString(".5\ncurrent")
	expectToRead(t, l, []byte("1, 0.5\n"))
	expectReadEOF(t, l)
}

func TestLineReaderSmallBuffer(t *testing.T) {
	l := NewLineReader(bytes.NewBufferString("0.25, 0.05\n1, 2\n"))
	var got []byte
	scratch := make([]byte, 3)
	for {
		n, err := l.Read(scratch)
		got = append(got, scratch[:n]...)
		if err != nil {
			break
		}
	}
	if want := "0.25, 0.05\n1, 2\n"; string(got) != want {
		t.Errorf("expected to read %q in small chunks, got %q", want, got)
	}
}

func TestLineReaderFinal(t *testing.T) {
	l := newLineReader(bytes.NewBufferString("u, apr\n1, 0.5"), true)
	expectToRead(t, l, []byte("u, apr\n"))
	expectToRead(t, l, []byte("1, 0.5"))
	expectReadEOF(t, l)
	if l.unterminated() {
		t.Errorf("expected the last line to have been read")
	}
}
