// Package readlines reads lines of text of bounded length,
// as typed at a prompt or listed in a file.
package readlines

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// DefaultMaxSize is the line size limit used when
// NewReader is given a non-positive maximum.
const DefaultMaxSize = 4096

// Reader reads lines from an underlying reader.
type Reader struct {
	b       *bufio.Reader
	maxSize int
	n       int
}

// NewReader returns a Reader that reads lines from r. Lines
// longer than maxSize bytes are truncated and the rest of
// the line discarded. If r is already a *bufio.Reader it is
// used directly, so no input is lost when r is shared.
func NewReader(r io.Reader, maxSize int) *Reader {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	b, ok := r.(*bufio.Reader)
	if !ok {
		b = bufio.NewReader(r)
	}
	return &Reader{
		b:       b,
		maxSize: maxSize,
	}
}

// ReadLine returns the next line, not including the line
// terminator ("\n" or "\r\n"). A final line without a
// terminator is returned with a nil error; after that
// ReadLine returns io.EOF.
func (r *Reader) ReadLine() (string, error) {
	line, isPrefix, err := r.b.ReadLine()
	if err != nil {
		return "", err
	}
	r.n++
	if !isPrefix {
		// Simple line that fits within the bufio buffer size.
		return string(truncate(line, r.maxSize)), nil
	}
	buf := make([]byte, len(line), len(line)*2)
	copy(buf, line)
	for isPrefix && len(buf) < r.maxSize {
		line, isPrefix, err = r.b.ReadLine()
		if err != nil {
			return string(truncate(buf, r.maxSize)), eofNilError(err)
		}
		buf = append(buf, line...)
	}
	// Discard any of the line that exceeds the maximum size.
	for isPrefix {
		_, isPrefix, err = r.b.ReadLine()
		if err != nil {
			return string(truncate(buf, r.maxSize)), eofNilError(err)
		}
	}
	return string(truncate(buf, r.maxSize)), nil
}

// Prompt writes prompt to w and reads a line. At end of
// input it returns io.ErrUnexpectedEOF.
func (r *Reader) Prompt(w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := r.ReadLine()
	if err == io.EOF {
		return "", io.ErrUnexpectedEOF
	}
	return line, err
}

// Iter calls fn with the number and text of each remaining
// line. If fn returns a non-nil error, reading ends and the
// error is returned from Iter. When EOF is encountered, Iter
// returns nil.
func (r *Reader) Iter(fn func(n int, line string) error) error {
	for {
		line, err := r.ReadLine()
		if err != nil {
			return eofNilError(err)
		}
		if err := fn(r.n, line); err != nil {
			return err
		}
	}
}

// truncate returns p truncated to the given size,
// avoiding splitting a multibyte UTF-8 sequence.
func truncate(p []byte, size int) []byte {
	if len(p) <= size {
		return p
	}
	p = p[0:size]
	start := size - 1
	if p[start] < utf8.RuneSelf {
		return p
	}
	// Find the start of the last character and check
	// whether it's valid.
	lim := size - utf8.UTFMax
	if lim < 0 {
		lim = 0
	}
	for ; start >= lim; start-- {
		if utf8.RuneStart(p[start]) {
			break
		}
	}
	// If we can't find the start of the last character,
	// return the whole lot.
	if start < 0 {
		return p
	}
	// The last rune was invalid, so lose it.
	if _, rsize := utf8.DecodeRune(p[start:]); rsize == 1 {
		return p[0:start]
	}
	return p
}

func eofNilError(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}
