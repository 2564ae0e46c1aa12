// Package encoding holds the small decoding helpers shared by the api client.
package encoding

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// maxBodySize caps how much of a response body will be decoded. The bad review listing is
// unpaginated so this is intentionally generous.
const maxBodySize = 64 << 20

var ErrDecodeJSON = errors.New("failed to decode JSON")

func UnmarshalJSON[T any](reader io.Reader) (T, error) {
	var value T
	if err := json.NewDecoder(io.LimitReader(reader, maxBodySize)).Decode(&value); err != nil {
		return value, fmt.Errorf("%w: %w", ErrDecodeJSON, err)
	}

	return value, nil
}
