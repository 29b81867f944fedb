// Package codewriter builds indented source text for brace-delimited languages.
//
// The writer tracks the current indentation level and whether it is at the
// start of a line, so callers can write fragments and nested blocks without
// handling whitespace themselves:
//
//	w := codewriter.New(codewriter.Options{IndentSize: 2, SingleQuote: true})
//	w.Write("if (ok)").Block(func() {
//		w.WriteLine("return 1")
//	})
//
// produces
//
//	if (ok) {
//	  return 1
//	}
package codewriter

import (
	"strings"
)

type Options struct {
	// IndentSize is the number of spaces per level. Ignored when UseTabs is set.
	IndentSize int
	UseTabs    bool
	// SingleQuote makes Quote use ' instead of ".
	SingleQuote bool
}

type Writer struct {
	buf         strings.Builder
	indent      string
	quote       byte
	level       int
	atLineStart bool
}

func New(opts Options) *Writer {
	indent := "\t"
	if !opts.UseTabs {
		size := opts.IndentSize
		if size <= 0 {
			size = 4
		}
		indent = strings.Repeat(" ", size)
	}
	quote := byte('"')
	if opts.SingleQuote {
		quote = '\''
	}
	return &Writer{indent: indent, quote: quote, atLineStart: true}
}

// Write appends text. Embedded newlines start new lines at the current
// indentation.
func (w *Writer) Write(text string) *Writer {
	for len(text) > 0 {
		line, rest, found := strings.Cut(text, "\n")
		if line != "" {
			if w.atLineStart {
				w.buf.WriteString(strings.Repeat(w.indent, w.level))
			}
			w.buf.WriteString(line)
			w.atLineStart = false
		}
		if !found {
			break
		}
		w.newLine()
		text = rest
	}
	return w
}

// WriteLine writes text on its own line.
func (w *Writer) WriteLine(text string) *Writer {
	w.NewLineIfLastNot()
	w.Write(text)
	w.newLine()
	return w
}

func (w *Writer) ConditionalWriteLine(condition bool, text string) *Writer {
	if condition {
		w.WriteLine(text)
	}
	return w
}

func (w *Writer) NewLine() *Writer {
	w.newLine()
	return w
}

func (w *Writer) NewLineIfLastNot() *Writer {
	if !w.atLineStart {
		w.newLine()
	}
	return w
}

// BlankLine ends the current line and adds one empty line. Consecutive calls
// do not stack.
func (w *Writer) BlankLine() *Writer {
	w.NewLineIfLastNot()
	if !w.lastLineBlank() {
		w.newLine()
	}
	return w
}

// BlankLineIfLastNot adds a blank line unless the output is empty or already
// ends with one.
func (w *Writer) BlankLineIfLastNot() *Writer {
	if w.buf.Len() == 0 {
		return w
	}
	return w.BlankLine()
}

// Block writes "{", runs fn one level deeper and closes with "}" followed by a
// newline.
func (w *Writer) Block(fn func()) *Writer {
	w.InlineBlock(fn)
	w.newLine()
	return w
}

// InlineBlock is Block without the trailing newline, for `}` followed by more
// code such as `})`.
func (w *Writer) InlineBlock(fn func()) *Writer {
	if !w.atLineStart && !w.endsWith(" ") {
		w.buf.WriteByte(' ')
	}
	w.Write("{")
	w.newLine()
	w.level++
	fn()
	w.NewLineIfLastNot()
	w.trimTrailingBlankLines()
	w.level--
	w.Write("}")
	return w
}

// Indent runs fn one level deeper.
func (w *Writer) Indent(fn func()) *Writer {
	w.NewLineIfLastNot()
	w.level++
	fn()
	w.NewLineIfLastNot()
	w.level--
	return w
}

// Quote writes text as a quoted string literal.
func (w *Writer) Quote(text string) *Writer {
	return w.Write(QuoteString(text, w.quote))
}

func (w *Writer) String() string {
	return w.buf.String()
}

func (w *Writer) newLine() {
	w.buf.WriteByte('\n')
	w.atLineStart = true
}

func (w *Writer) endsWith(suffix string) bool {
	return strings.HasSuffix(w.buf.String(), suffix)
}

func (w *Writer) lastLineBlank() bool {
	s := w.buf.String()
	return s == "" || s == "\n" || strings.HasSuffix(s, "\n\n")
}

// trimTrailingBlankLines keeps a block from closing after an empty line.
func (w *Writer) trimTrailingBlankLines() {
	s := w.buf.String()
	trimmed := strings.TrimRight(s, "\n")
	if len(s)-len(trimmed) <= 1 {
		return
	}
	w.buf.Reset()
	w.buf.WriteString(trimmed)
	w.buf.WriteByte('\n')
}

// QuoteString quotes text with the given quote character, escaping
// backslashes, the quote itself and line breaks.
func QuoteString(text string, quote byte) string {
	var b strings.Builder
	b.WriteByte(quote)
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case quote:
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(quote)
	return b.String()
}
