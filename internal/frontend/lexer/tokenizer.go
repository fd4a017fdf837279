// Package lexer tokenizes a postfix arithmetic expression read from a
// character stream. Lexemes are signed decimal numbers and the four
// single-rune operators; the stream is terminated by ';' or end of input.
//
// The tokenizer validates the *shape* of a number only. Parsing a number
// lexeme to a float64 is the evaluator's responsibility at consumption time,
// which keeps the tokenizing/parsing boundary explicit.
package lexer

import (
	"bufio"
	"io"
	"strings"

	"rpncalc/internal/diagnostics"
)

// Markers and operators recognized in the input
const (
	Terminator = ';'
	Plus       = '+'
	Minus      = '-'
	Mult       = '*'
	Div        = '/'
	RadixPoint = '.'
)

type TokenKind int

const (
	NUMBER_TOKEN TokenKind = iota
	OPERATOR_TOKEN
)

// Token is one classified unit of input. Value holds the raw textual form;
// numbers stay textual until the evaluator parses them. Offset is the byte
// offset of the first rune, kept for diagnostics.
type Token struct {
	Kind   TokenKind
	Value  string
	Offset int
}

// Tokenizer scans runes one at a time with a one-slot pushback buffer. The
// buffer is owned here rather than relying on the reader's own unread
// capability; one slot is all the grammar ever needs, since at most one rune
// is pushed back before the next read.
type Tokenizer struct {
	r          *bufio.Reader
	pending    rune
	hasPending bool
	offset     int // byte offset of the next rune to be returned by read
	eof        bool
}

// New creates a Tokenizer over r
func New(r io.Reader) *Tokenizer {
	return &Tokenizer{r: bufio.NewReader(r)}
}

// read returns the next rune, preferring the pushback slot
func (t *Tokenizer) read() (rune, error) {
	if t.hasPending {
		t.hasPending = false
		c := t.pending
		t.offset += len(string(c))
		return c, nil
	}
	c, size, err := t.r.ReadRune()
	if err != nil {
		return 0, err
	}
	t.offset += size
	return c, nil
}

// unread pushes c back so the next read returns it again. The one-slot bound
// is an invariant: unread is never called twice without an intervening read.
func (t *Tokenizer) unread(c rune) {
	t.pending = c
	t.hasPending = true
	t.offset -= len(string(c))
}

// isDigit reports whether c is an ASCII decimal digit. Classification is
// deliberately locale-independent; strconv.ParseFloat accepts only these
// digits anyway.
func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// isSpace reports whether c is ASCII whitespace
func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// NextToken scans and classifies the next lexeme. The boolean result reports
// end of input: the terminator or end of stream has been reached. A true
// end-of-input may still carry a final non-empty token that the caller must
// process before stopping.
//
// The transient scan state (accumulated text, radix-point flag, valid-number
// flag) is local to one call and reset on entry.
func (t *Tokenizer) NextToken() (Token, bool, error) {
	var text strings.Builder
	gotRadixPoint := false // whether the lexeme already contains a radix point
	isValidNum := false    // whether the accumulated text is a complete number
	reading := true
	start := t.offset

	for reading {
		c, err := t.read()
		if err == io.EOF {
			t.eof = true
			break
		}
		if err != nil {
			return Token{}, false, &diagnostics.StreamError{Err: err}
		}
		if text.Len() == 0 {
			start = t.offset - len(string(c))
		}

		switch {
		case c == Terminator:
			// Ends the stream and the current lexeme; not part of it.
			t.eof = true
			reading = false

		case c == Minus || c == Plus:
			if text.Len() > 0 {
				// Already have something; this starts the next lexeme.
				t.unread(c)
				reading = false
				break
			}
			text.WriteRune(c)

		case c == RadixPoint:
			if gotRadixPoint {
				t.unread(c)
				reading = false
				break
			}
			if text.Len() == 0 {
				text.WriteByte('0') // for cases like .2
			}
			text.WriteRune(c)
			gotRadixPoint = true
			isValidNum = false // a number can't end with a radix point

		case c == Mult || c == Div:
			if text.Len() > 0 {
				t.unread(c)
			} else {
				text.WriteRune(c)
			}
			reading = false

		case isSpace(c):
			if text.Len() == 0 {
				break // leading whitespace is skipped
			}
			// A space is a delimiter.
			t.unread(c)
			reading = false

		case isDigit(c):
			text.WriteRune(c)
			isValidNum = true

		default:
			// Keep the rune so the error can show the offending text.
			text.WriteRune(c)
			t.unread(c)
			isValidNum = false
			reading = false
		}
	}

	tok := Token{Kind: NUMBER_TOKEN, Value: text.String(), Offset: start}
	if isOperator(tok.Value) {
		tok.Kind = OPERATOR_TOKEN
	}

	if !t.eof && !isValidNum && tok.Kind != OPERATOR_TOKEN {
		return tok, false, &diagnostics.InvalidLexemeError{Text: tok.Value, Offset: start}
	}

	return tok, t.eof, nil
}

// isOperator reports whether text is exactly one of the four operators
func isOperator(text string) bool {
	switch text {
	case string(Plus), string(Minus), string(Mult), string(Div):
		return true
	}
	return false
}
