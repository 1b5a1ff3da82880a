package beerxml

import (
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/brewcalc/pkg/core"
)

const indentUnit = "  "

// sink writes one line per call straight to the underlying writer.
// The first error is kept and every later call becomes a no-op, so a record
// is never continued past a failed field.
type sink struct {
	w   io.Writer
	buf []byte
	err error
}

func newSink(w io.Writer) *sink {
	return &sink{w: w, buf: make([]byte, 0, 128)}
}

func (s *sink) indent(depth int) {
	for i := 0; i < depth; i++ {
		s.buf = append(s.buf, indentUnit...)
	}
}

func (s *sink) flush() {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(s.buf)
	s.buf = s.buf[:0]
}

func (s *sink) raw(line string) {
	if s.err != nil {
		return
	}
	s.buf = append(s.buf[:0], line...)
	s.flush()
}

// tag writes <NAME>text</NAME>. Used for required fields.
func (s *sink) tag(depth int, name, text string) {
	if s.err != nil {
		return
	}
	s.buf = s.buf[:0]
	s.indent(depth)
	s.buf = append(s.buf, '<')
	s.buf = append(s.buf, name...)
	s.buf = append(s.buf, '>')
	s.buf = append(s.buf, text...)
	s.buf = append(s.buf, "</"...)
	s.buf = append(s.buf, name...)
	s.buf = append(s.buf, ">\n"...)
	s.flush()
}

// flag writes the tag only when v is true.
func (s *sink) flag(depth int, name string, v bool) {
	if v {
		s.tag(depth, name, "true")
	}
}

// opt writes the tag only when v is set.
func opt[T any](s *sink, depth int, name string, v *T, text func(T) string) {
	if v != nil {
		s.tag(depth, name, text(*v))
	}
}

func (s *sink) open(depth int, name string) {
	if s.err != nil {
		return
	}
	s.buf = s.buf[:0]
	s.indent(depth)
	s.buf = append(s.buf, '<')
	s.buf = append(s.buf, name...)
	s.buf = append(s.buf, ">\n"...)
	s.flush()
}

func (s *sink) close(depth int, name string) {
	if s.err != nil {
		return
	}
	s.buf = s.buf[:0]
	s.indent(depth)
	s.buf = append(s.buf, "</"...)
	s.buf = append(s.buf, name...)
	s.buf = append(s.buf, ">\n"...)
	s.flush()
}

// block wraps body, written at depth+1, in an open and a close line.
func (s *sink) block(depth int, name string, body func(depth int)) {
	s.open(depth, name)
	if s.err != nil {
		return
	}
	body(depth + 1)
	s.close(depth, name)
}

// collection writes every record of c, in collection order, inside one block.
func collection[T core.Record](s *sink, depth int, tag string, c *core.Collection[T], element func(s *sink, depth int, r T)) {
	s.block(depth, tag, func(depth int) {
		for r := range c.All() {
			if s.err != nil {
				return
			}
			element(s, depth, r)
		}
	})
}

// Text renderings. Floats use the shortest decimal that round-trips and never
// an exponent, so 5.0 is "5" and 0.0001 is "0.0001".

func number(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func integer(v int64) string { return strconv.FormatInt(v, 10) }

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func text(v string) string { return escaper.Replace(v) }
