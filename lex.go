package infix

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a number token.
	tokenNum
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open bracket, (.
	tokenOpen
	// tokenClose is a close bracket, ).
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the characters which are considered to be operators.
const Operators = "+-*/"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is encountered
// the result is an EOF token with a nil error. Subsequent times, the result
// is an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		default:
			if strings.ContainsRune(Operators, r) {
				tok.text = string(r)
				tok.kind = tokenOp
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans a numeral: a run of digits with at most one decimal point.
func (l *lexer) scanNum() error {
	var dig, dot bool
scan:
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break scan
			}
			return err
		}
		switch {
		case '0' <= r && r <= '9':
			dig = true
		case r == '.':
			if dot {
				l.buf.WriteRune(r)
				return l.error("number")
			}
			dot = true
		default:
			l.unreadRune()
			break scan
		}
		l.buf.WriteRune(r)
	}
	if !dig {
		return l.error("number")
	}
	return nil
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
