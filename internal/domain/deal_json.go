package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Timestamps without a zone are read as UTC.
var dealTimestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseDealTimestamp accepts an RFC 3339 timestamp or a local date-time
// such as 2025-01-15T10:30:00.
func ParseDealTimestamp(s string) (time.Time, error) {
	for _, layout := range dealTimestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid deal timestamp %q", s)
}

// UnmarshalJSON decodes a deal request strictly: unknown fields are rejected
// and dealTimestamp may be given with or without a zone.
func (r *DealRequest) UnmarshalJSON(data []byte) error {
	type wire DealRequest
	aux := struct {
		*wire
		DealTimestamp *string `json:"dealTimestamp"`
	}{wire: (*wire)(r)}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&aux); err != nil {
		return err
	}

	r.DealTimestamp = nil
	if aux.DealTimestamp != nil {
		ts, err := ParseDealTimestamp(*aux.DealTimestamp)
		if err != nil {
			return err
		}
		r.DealTimestamp = &ts
	}
	return nil
}
