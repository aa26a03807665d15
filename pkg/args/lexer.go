package args

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind tells flags apart from positional tokens.
type Kind int

const (
	// Positional is a token that is not a flag.
	Positional Kind = iota
	// Short is a single-letter flag such as -d.
	Short
	// Long is a named flag such as --mode.
	Long
)

// Arg is one token read from the command line.
type Arg struct {
	Kind  Kind
	Short rune
	Long  string
	Raw   string // text as typed, for positionals and undecodable short flags
}

// String renders the token the way the user typed it.
func (a Arg) String() string {
	switch a.Kind {
	case Short:
		if a.Raw != "" {
			return a.Raw
		}
		return "-" + string(a.Short)
	case Long:
		return "--" + a.Long
	default:
		return a.Raw
	}
}

// Lexer splits raw process arguments into flags and values.
//
// Short flags may be clustered (-xd50x50) and may carry their value
// attached (-d50x50, -d=50x50) or as the following token (-d 50x50).
// Long flags take their value as --log=y or --log y. A bare -- ends flag
// parsing; everything after it is positional.
type Lexer struct {
	args    []string
	pos     int
	cluster string  // unread remainder of a short flag cluster
	pending *string // value attached to the last long flag with =
	last    Arg
	done    bool // seen --
}

// NewLexer returns a Lexer over args, which must not include the program
// name.
func NewLexer(args []string) *Lexer {
	return &Lexer{args: args}
}

// Next returns the next token. ok is false once the arguments are
// exhausted.
func (l *Lexer) Next() (arg Arg, ok bool, err error) {
	if l.pending != nil {
		v := *l.pending
		l.pending = nil
		return Arg{}, false, fmt.Errorf("%w %q for %s", ErrUnexpectedValue, v, l.last)
	}

	if l.cluster != "" {
		if l.cluster[0] == '=' && l.last.Kind == Short {
			v := l.cluster[1:]
			l.cluster = ""
			return Arg{}, false, fmt.Errorf("%w %q for %s", ErrUnexpectedValue, v, l.last)
		}
		r, size := utf8.DecodeRuneInString(l.cluster)
		l.last = Arg{Kind: Short, Short: r}
		if r == utf8.RuneError && size == 1 {
			l.last.Raw = "-" + l.cluster[:size]
		}
		l.cluster = l.cluster[size:]
		return l.last, true, nil
	}

	if l.pos >= len(l.args) {
		return Arg{}, false, nil
	}

	tok := l.args[l.pos]
	l.pos++

	switch {
	case l.done:
		l.last = Arg{Kind: Positional, Raw: tok}
	case tok == "--":
		l.done = true
		return l.Next()
	case strings.HasPrefix(tok, "--"):
		name, value, hasValue := strings.Cut(tok[2:], "=")
		if hasValue {
			l.pending = &value
		}
		l.last = Arg{Kind: Long, Long: name}
	case looksLikeFlag(tok):
		l.cluster = tok[1:]
		return l.Next()
	default:
		l.last = Arg{Kind: Positional, Raw: tok}
	}

	return l.last, true, nil
}

// Value returns the value for the flag most recently returned by Next.
// A following token that looks like a flag is left unread and reported
// as unexpected.
func (l *Lexer) Value() (string, error) {
	if l.pending != nil {
		v := *l.pending
		l.pending = nil
		return v, nil
	}

	if l.cluster != "" {
		v := strings.TrimPrefix(l.cluster, "=")
		l.cluster = ""
		return v, nil
	}

	if l.pos >= len(l.args) {
		return "", fmt.Errorf("%w for %s", ErrMissingValue, l.last)
	}

	tok := l.args[l.pos]
	if !l.done && looksLikeFlag(tok) {
		return "", fmt.Errorf("%w %q", ErrUnexpectedArgument, tok)
	}

	l.pos++
	return tok, nil
}

// looksLikeFlag reports whether tok starts with a dash. A lone "-"
// conventionally names stdin and is positional.
func looksLikeFlag(tok string) bool {
	return len(tok) > 1 && tok[0] == '-'
}
