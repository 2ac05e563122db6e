package booking

import (
	"encoding/json"
	"errors"
)

var ErrMalformedProductList = errors.New("malformed product list")

type ProductLine struct {
	Name              string `json:"name"`
	Quantity          int    `json:"quantity"`
	WrappingRequested bool   `json:"wrapping_requested"`
}

// DecodeProductLines accepts the three encodings found in legacy rows: a
// plain JSON array, a JSON string containing the array, and a double-encoded
// JSON string. Writes always store the canonical array; this decoder is a
// migration shim for rows written before normalization, not a permanent
// pattern.
func DecodeProductLines(raw []byte) ([]ProductLine, error) {
	if len(raw) == 0 {
		return []ProductLine{}, nil
	}

	data := raw
	// At most two layers of string wrapping were ever observed.
	for range 3 {
		var lines []ProductLine
		if err := json.Unmarshal(data, &lines); err == nil {
			if lines == nil {
				lines = []ProductLine{}
			}
			return lines, nil
		}

		var wrapped string
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, ErrMalformedProductList
		}
		data = []byte(wrapped)
	}

	return nil, ErrMalformedProductList
}

// EncodeProductLines produces the canonical storage form: a JSON array,
// never a string-wrapped one. nil encodes as an empty array.
func EncodeProductLines(lines []ProductLine) ([]byte, error) {
	if lines == nil {
		lines = []ProductLine{}
	}
	return json.Marshal(lines)
}
