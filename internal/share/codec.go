// Package share encodes trips into compact URL-safe tokens so an
// itinerary can be passed around without a server-side copy.
package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"trip-planner-service/internal/domain"
)

// maxEncodedLen keeps tokens inside common URL length limits.
const maxEncodedLen = 7000

var ErrTripTooLarge = errors.New("trip too large to share as a link")

// EncodeTrip serializes a trip to JSON, compresses it with lz4 and
// returns the payload as unpadded URL-safe base64.
func EncodeTrip(trip domain.Trip) (string, error) {
	payload, err := json.Marshal(trip)
	if err != nil {
		return "", fmt.Errorf("encode trip %q: marshal: %w", trip.ID, err)
	}

	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return "", fmt.Errorf("encode trip %q: compress: %w", trip.ID, err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("encode trip %q: flush: %w", trip.ID, err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(buf.Bytes())
	if len(encoded) > maxEncodedLen {
		return "", ErrTripTooLarge
	}

	return encoded, nil
}

// DecodeTrip reverses EncodeTrip.
func DecodeTrip(encoded string) (domain.Trip, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("decode trip: base64: %w", err)
	}

	payload, err := io.ReadAll(lz4.NewReader(bytes.NewReader(compressed)))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("decode trip: decompress: %w", err)
	}

	var trip domain.Trip
	if err := json.Unmarshal(payload, &trip); err != nil {
		return domain.Trip{}, fmt.Errorf("decode trip: unmarshal: %w", err)
	}

	return trip, nil
}

// ShareURL renders the canonical share link for an encoded trip.
func ShareURL(base, encoded string) string {
	return fmt.Sprintf("%s/trips/import?payload=%s", base, encoded)
}
