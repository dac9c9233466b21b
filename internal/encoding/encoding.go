// Package encoding resolves caller-supplied text encoding names and
// converts shared parameter file bytes to and from Go strings. The
// caller owns file-system access; this package only sees bytes plus an
// encoding name such as "utf-8" or "utf-16".
package encoding

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	textencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"rsparam/pkg/sptypes"
)

// DefaultName is the encoding assumed when the caller supplies none.
const DefaultName = "utf-8"

// lookup resolves an IANA encoding name. Unknown or unsupported names
// surface as a DecodeError so callers get one consistent failure mode.
func lookup(name string) (textencoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, &sptypes.DecodeError{Encoding: name, Err: err}
	}
	if enc == nil {
		return nil, &sptypes.DecodeError{Encoding: name, Err: errors.New("encoding is not supported")}
	}
	return enc, nil
}

// Decode converts raw file bytes to a string under the named encoding.
// It fails with a DecodeError when the name is unknown or the bytes do
// not decode cleanly.
func Decode(data []byte, name string) (string, error) {
	if name == "" {
		name = DefaultName
	}
	enc, err := lookup(name)
	if err != nil {
		return "", err
	}
	if enc == unicode.UTF8 {
		// The UTF-8 decoder substitutes replacement runes instead of
		// failing, so validate explicitly.
		if !utf8.Valid(data) {
			return "", &sptypes.DecodeError{Encoding: name, Err: errors.New("input is not valid UTF-8")}
		}
		return string(data), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", &sptypes.DecodeError{Encoding: name, Err: err}
	}
	// x/text decoders substitute U+FFFD for unmappable input instead of
	// failing, so treat a substitution as a decode failure.
	text := string(out)
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", &sptypes.DecodeError{Encoding: name, Err: fmt.Errorf("input does not decode as %s", name)}
	}
	return text, nil
}

// Encode converts a string to bytes under the named encoding, used when
// writing merged or sorted files back out.
func Encode(text string, name string) ([]byte, error) {
	if name == "" {
		name = DefaultName
	}
	enc, err := lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return []byte(text), nil
	}
	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("cannot encode output as %s: %w", name, err)
	}
	return out, nil
}
