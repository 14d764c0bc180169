// Package listfile reads newline-delimited password lists such as rockyou.txt.
//
// Every consumer of a list (the file and memory blacklist stores and the
// SQLite index import) reads it through Reader, so an entry means the same
// thing everywhere: bytes that are not valid UTF-8 become U+FFFD and
// trailing whitespace, including the line terminator, is removed. Leading
// whitespace and case are kept.
package listfile

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Reader reads list entries one line at a time, in the manner of
// bufio.Scanner. Lines may be of any length.
type Reader struct {
	br    *bufio.Reader
	entry string
	err   error
	done  bool
}

// NewReader returns a Reader that decodes r tolerantly.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		br: bufio.NewReader(transform.NewReader(r, xunicode.UTF8.NewDecoder())),
	}
}

// Next advances to the next entry. It returns false at the end of the input
// or on a read error, which Err then reports.
func (r *Reader) Next() bool {
	if r.done {
		return false
	}

	line, err := r.br.ReadString('\n')
	if err != nil {
		r.done = true
		if !errors.Is(err, io.EOF) {
			r.err = err
			return false
		}
		if line == "" {
			return false
		}
	}
	r.entry = Normalize(line)
	return true
}

// Entry returns the entry read by the last call to Next.
func (r *Reader) Entry() string {
	return r.entry
}

// Err returns the first read error. End of input is not an error.
func (r *Reader) Err() error {
	return r.err
}

// Normalize turns one raw line into a list entry.
func Normalize(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}
