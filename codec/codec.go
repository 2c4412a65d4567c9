// Package codec converts between floats and the compact letter codes
// used to embed simulation parameters in file names. A code is one
// exponent letter followed by a 4-digit mantissa in "d.ddd" form, e.g.
// 512.3 encodes as "n5.123": mantissa 5.123, letter "n" for exponent +2.
package codec

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Letters a-z map to decimal exponents MinExponent through MaxExponent,
// ascending by one per letter.
const (
	MinExponent = -11
	MaxExponent = 14
)

// Conversion errors. Callers should treat any of these as fatal for the
// conversion call; there is no partial result.
var (
	ErrUnknownLetter = fmt.Errorf("unknown exponent letter")
	ErrExponentRange = fmt.Errorf("exponent out of range [%d, %d]", MinExponent, MaxExponent)
	ErrMalformedCode = fmt.Errorf("malformed letter code")
	ErrNotANumber    = fmt.Errorf("not a numeric literal")
)

// numeral matches a plain decimal literal with optional scientific
// notation. Anything else is rejected, including the hex, "inf" and
// "nan" spellings strconv would otherwise accept.
var numeral = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// LetterExponent returns the exponent for a table letter.
func LetterExponent(letter byte) (int, error) {
	if letter < 'a' || letter > 'z' {
		return 0, fmt.Errorf("%q: %w", string(letter), ErrUnknownLetter)
	}
	return int(letter-'a') + MinExponent, nil
}

// ExponentLetter returns the table letter for an exponent.
func ExponentLetter(exp int) (byte, error) {
	if exp < MinExponent || exp > MaxExponent {
		return 0, fmt.Errorf("exponent %d: %w", exp, ErrExponentRange)
	}
	return byte('a' + exp - MinExponent), nil
}

// Encode converts a value to its letter code.
//
// The value is normalized to scientific notation with 3 fractional
// digits by strconv.FormatFloat, which rounds the exact binary value to
// nearest with ties to even. A mantissa that rounds up past 9.999
// carries into the next exponent, so 9999.5 encodes as "p1.000", not
// "o9.999".
//
// Codes carry no sign, so values <= 0 are out of the representable
// range, as are values whose exponent falls outside the letter table.
func Encode(value float64) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("%v: %w", value, ErrNotANumber)
	}
	if value <= 0 {
		return "", fmt.Errorf("non-positive value %v: %w", value, ErrExponentRange)
	}

	// "5.123e+02": mantissa digits in [0:5], exponent after "e".
	s := strconv.FormatFloat(value, 'e', 3, 64)
	mant, expStr, _ := strings.Cut(s, "e")
	exp, err := strconv.Atoi(expStr)
	if err != nil {
		return "", fmt.Errorf("formatting %v: %w", value, err)
	}

	letter, err := ExponentLetter(exp)
	if err != nil {
		return "", fmt.Errorf("value %v: %w", value, err)
	}
	return string(letter) + mant, nil
}

// EncodeString parses a numeric literal and encodes it. The input must
// be a plain decimal literal, optionally in scientific notation; no
// expression evaluation takes place.
func EncodeString(value string) (string, error) {
	v, err := ParseFloat(value)
	if err != nil {
		return "", err
	}
	return Encode(v)
}

// Decode converts a letter code back to its value. A code is exactly
// six characters in "Ld.ddd" form: the first character selects the
// exponent, the remainder is the mantissa. A first character outside
// a-z fails with ErrUnknownLetter; anything not matching the fixed
// shape fails with ErrMalformedCode.
func Decode(code string) (float64, error) {
	if len(code) != 6 || code[2] != '.' ||
		!isDigit(code[1]) || !isDigit(code[3]) || !isDigit(code[4]) || !isDigit(code[5]) {
		return 0, fmt.Errorf("code %q: %w", code, ErrMalformedCode)
	}
	exp, err := LetterExponent(code[0])
	if err != nil {
		return 0, fmt.Errorf("code %q: %w", code, err)
	}
	v, err := ParseFloat(code[1:] + "e" + strconv.Itoa(exp))
	if err != nil {
		return 0, fmt.Errorf("code %q: %w", code, ErrMalformedCode)
	}
	return v, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// DecodeString converts a letter code to a formatted scientific
// numeral, e.g. "n5.123" to "5.123e+2".
func DecodeString(code string) (string, error) {
	if _, err := Decode(code); err != nil {
		return "", err
	}
	exp, _ := LetterExponent(code[0])
	return fmt.Sprintf("%se%+d", code[1:], exp), nil
}

// ParseFloat parses a strict decimal numeric literal. It fails closed
// on anything that is not a plain number: expressions, hex floats,
// "inf", "nan", or empty input.
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !numeral.MatchString(s) {
		return 0, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}
	return v, nil
}
