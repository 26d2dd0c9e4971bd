package alliance

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp is a nanosecond UNIX timestamp that serializes as an RFC 3339
// string in UTC, e.g. "2023-06-06T18:37:29.956787974Z". This matches the
// encoding the chain uses for alliance reward start times.
type Timestamp uint64

// TimestampFromTime converts a time.Time into a Timestamp.
func TimestampFromTime(value time.Time) Timestamp {
	return Timestamp(value.UnixNano())
}

// Time converts the timestamp back into a UTC time.Time.
func (timestamp Timestamp) Time() time.Time {
	return time.Unix(0, int64(timestamp)).UTC()
}

// MarshalJSON encodes the timestamp as an RFC 3339 string with nanosecond
// precision.
func (timestamp Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(timestamp.Time().Format(time.RFC3339Nano))
}

// UnmarshalJSON decodes an RFC 3339 string into the timestamp.
func (timestamp *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a JSON string: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return fmt.Errorf("invalid RFC 3339 timestamp %q: %w", raw, err)
	}
	if parsed.Unix() < 0 {
		return fmt.Errorf("timestamp %q predates the UNIX epoch", raw)
	}

	*timestamp = Timestamp(parsed.UnixNano())
	return nil
}
