// Package numinput reads bounded numbers from an interactive input source.
//
// ParseBounded is the pure part: it validates one token. Reader adds the
// prompting loop on top: malformed input discards the rest of the line and
// asks again, out-of-range input asks again without discarding, and the end
// of input or a read error is fatal for the caller.
package numinput

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrMalformed   = errors.New("malformed number")
	ErrOutOfRange  = errors.New("number out of range")
	ErrInputClosed = errors.New("failed to read number")
)

const (
	malformedPrompt  = "You are wrong; repeat please!"
	outOfRangePrompt = "Number out of range. Please enter a valid number."
)

// Number is the set of types ParseBounded can produce.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// ParseBounded parses token as a T and checks lo <= value <= hi.
func ParseBounded[T Number](token string, lo, hi T) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()

	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(token, rv.Type().Bits())
		if err != nil || math.IsNaN(f) {
			return 0, fmt.Errorf("parse %q: %w", token, ErrMalformed)
		}
		rv.SetFloat(f)
	default:
		i, err := strconv.ParseInt(token, 10, rv.Type().Bits())
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", token, ErrMalformed)
		}
		rv.SetInt(i)
	}

	if v < lo || v > hi {
		return 0, fmt.Errorf("%v not in [%v, %v]: %w", v, lo, hi, ErrOutOfRange)
	}
	return v, nil
}

// Reader pulls whitespace-separated tokens from an input source and writes
// retry prompts to Prompts.
type Reader struct {
	in      *bufio.Reader
	Prompts io.Writer
}

func NewReader(in io.Reader, prompts io.Writer) *Reader {
	if prompts == nil {
		prompts = io.Discard
	}
	return &Reader{in: bufio.NewReader(in), Prompts: prompts}
}

// Read keeps asking until a token parses into [lo, hi]. It fails only
// with ErrInputClosed, wrapping the end of input or the read error.
func Read[T Number](r *Reader, lo, hi T) (T, error) {
	for {
		tok, err := r.token()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInputClosed, err)
		}

		v, err := ParseBounded(tok, lo, hi)
		switch {
		case err == nil:
			return v, nil
		case errors.Is(err, ErrMalformed):
			if err := r.discardLine(); err != nil && !errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("%w: %w", ErrInputClosed, err)
			}
			fmt.Fprintln(r.Prompts, malformedPrompt)
		default:
			fmt.Fprintln(r.Prompts, outOfRangePrompt)
		}
	}
}

// Word returns the next whitespace-separated token as text, e.g. a train
// name.
func (r *Reader) Word() (string, error) {
	tok, err := r.token()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}
	return tok, nil
}

// token skips leading whitespace and reads up to the next whitespace rune,
// which is left unread.
func (r *Reader) token() (string, error) {
	var b strings.Builder
	for {
		c, _, err := r.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(c) {
			if b.Len() == 0 {
				continue
			}
			_ = r.in.UnreadRune()
			return b.String(), nil
		}
		b.WriteRune(c)
	}
}

func (r *Reader) discardLine() error {
	_, err := r.in.ReadString('\n')
	return err
}
