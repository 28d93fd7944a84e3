package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// decoder is one strategy for turning a raw secret string into bytes.
type decoder struct {
	name   string
	decode func(raw string) ([]byte, error)
}

// decoders are tried in order; the first one producing SecretKeySize bytes wins.
var decoders = []decoder{
	{name: "json", decode: decodeJSONArray},
	{name: "base58", decode: decodeBase58},
}

func decodeSecret(raw string) ([]byte, error) {
	var (
		reasons   []string
		lengthErr *LengthError
	)

	for _, d := range decoders {
		secret, err := d.decode(raw)
		if err == nil && len(secret) != SecretKeySize {
			err = &LengthError{Got: len(secret)}
		}
		if err == nil {
			return secret, nil
		}

		var le *LengthError
		if errors.As(err, &le) {
			lengthErr = le
		}
		reasons = append(reasons, fmt.Sprintf("%s: %v", d.name, err))
	}

	// A stage that produced well-formed bytes of the wrong size is a more
	// precise diagnostic than the parse failures of the others.
	if lengthErr != nil {
		return nil, lengthErr
	}
	return nil, fmt.Errorf("%w (%s)", ErrUndecodable, strings.Join(reasons, "; "))
}

// decodeJSONArray accepts the solana-keygen form: a JSON array of byte values.
func decodeJSONArray(raw string) ([]byte, error) {
	var values []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("not a JSON array: %w", err)
	}
	if values == nil {
		return nil, errors.New("not a JSON array")
	}

	secret := make([]byte, len(values))
	for i, v := range values {
		n, err := strconv.ParseUint(string(v), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("element %d (%s) is not a byte value in [0,255]", i, v)
		}
		secret[i] = byte(n)
	}
	return secret, nil
}

func decodeBase58(raw string) ([]byte, error) {
	// base58.Decode signals an invalid character with an empty result; any
	// valid non-empty input decodes to at least one byte.
	secret := base58.Decode(raw)
	if len(secret) == 0 {
		return nil, errors.New("invalid base58 string")
	}
	return secret, nil
}
