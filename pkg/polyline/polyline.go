// Package polyline implements the encoded polyline algorithm used by the
// directions provider: signed deltas at 1e-5 fixed-point precision, packed
// into 5-bit groups offset by 63.
package polyline

import (
	"fmt"
	"strings"

	"campusnav/internal/models/domain_models"
)

const precision = 1e5

// DecodeError reports a malformed encoded polyline.
type DecodeError struct {
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("polyline decode failed at byte %d: %s", e.Offset, e.Reason)
}

// Decode converts an encoded polyline into its coordinate sequence.
// An empty input yields an empty sequence. A truncated byte group is an
// error; callers should treat that as "no path available".
func Decode(encoded string) ([]domain_models.Coordinate, error) {
	points := make([]domain_models.Coordinate, 0, len(encoded)/4)
	index, lat, lng := 0, 0, 0

	for index < len(encoded) {
		dLat, next, err := decodeDelta(encoded, index)
		if err != nil {
			return nil, err
		}
		lat += dLat

		dLng, next, err := decodeDelta(encoded, next)
		if err != nil {
			return nil, err
		}
		lng += dLng
		index = next

		points = append(points, domain_models.Coordinate{
			Latitude:  float64(lat) / precision,
			Longitude: float64(lng) / precision,
		})
	}

	return points, nil
}

// decodeDelta reads one signed delta starting at index and returns it with
// the index of the following byte.
func decodeDelta(encoded string, index int) (int, int, error) {
	result, shift := 0, 0

	for {
		if index >= len(encoded) {
			return 0, 0, &DecodeError{Offset: index, Reason: "truncated byte group"}
		}
		b := int(encoded[index]) - 63
		if b < 0 {
			return 0, 0, &DecodeError{Offset: index, Reason: "byte below encoding alphabet"}
		}
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}

// Encode is the inverse of Decode. It exists for tests and tooling; the
// engine itself only decodes provider paths.
func Encode(points []domain_models.Coordinate) string {
	var sb strings.Builder
	prevLat, prevLng := 0, 0

	for _, p := range points {
		lat := round(p.Latitude * precision)
		lng := round(p.Longitude * precision)
		encodeDelta(&sb, lat-prevLat)
		encodeDelta(&sb, lng-prevLng)
		prevLat, prevLng = lat, lng
	}

	return sb.String()
}

func encodeDelta(sb *strings.Builder, delta int) {
	v := delta << 1
	if delta < 0 {
		v = ^v
	}
	for v >= 0x20 {
		sb.WriteByte(byte((0x20 | (v & 0x1f)) + 63))
		v >>= 5
	}
	sb.WriteByte(byte(v + 63))
}

func round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
