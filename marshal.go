// Copyright 2026 epochware llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// On the wire a Stamp is its integer second count and a Zoned is an
// RFC 3339 string, which keeps the zone offset (though not the zone
// name). The layout of a Stamp is presentation state and is not
// serialized.

var (
	_ json.Marshaler           = Stamp{}
	_ json.Unmarshaler         = (*Stamp)(nil)
	_ encoding.TextMarshaler   = Stamp{}
	_ encoding.TextUnmarshaler = (*Stamp)(nil)
	_ yaml.Marshaler           = Stamp{}
	_ yaml.Unmarshaler         = (*Stamp)(nil)
	_ msgpack.CustomEncoder    = Stamp{}
	_ msgpack.CustomDecoder    = (*Stamp)(nil)
	_ driver.Valuer            = Stamp{}
	_ sql.Scanner              = (*Stamp)(nil)

	_ json.Marshaler           = Zoned{}
	_ json.Unmarshaler         = (*Zoned)(nil)
	_ encoding.TextMarshaler   = Zoned{}
	_ encoding.TextUnmarshaler = (*Zoned)(nil)
	_ yaml.Marshaler           = Zoned{}
	_ yaml.Unmarshaler         = (*Zoned)(nil)
	_ msgpack.CustomEncoder    = Zoned{}
	_ msgpack.CustomDecoder    = (*Zoned)(nil)
	_ driver.Valuer            = Zoned{}
	_ sql.Scanner              = (*Zoned)(nil)
)

// MarshalJSON renders the Stamp as its integer second count.
func (s Stamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, s.sec, 10), nil
}

// UnmarshalJSON accepts an integer second count.
func (s *Stamp) UnmarshalJSON(data []byte) error {
	sec, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("stamp must be an integer second count: %w", err)
	}
	s.sec = sec
	return nil
}

// MarshalText renders the Stamp as its integer second count.
func (s Stamp) MarshalText() ([]byte, error) {
	return s.MarshalJSON()
}

// UnmarshalText accepts an integer second count.
func (s *Stamp) UnmarshalText(data []byte) error {
	return s.UnmarshalJSON(data)
}

// MarshalYAML renders the Stamp as its integer second count.
func (s Stamp) MarshalYAML() (any, error) {
	return s.sec, nil
}

// UnmarshalYAML accepts an integer second count.
func (s *Stamp) UnmarshalYAML(node *yaml.Node) error {
	return s.UnmarshalJSON([]byte(node.Value))
}

// EncodeMsgpack writes the Stamp as its integer second count.
func (s Stamp) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeInt64(s.sec)
}

// DecodeMsgpack reads an integer second count.
func (s *Stamp) DecodeMsgpack(dec *msgpack.Decoder) error {
	sec, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	s.sec = sec
	return nil
}

// Value stores the Stamp as its integer second count.
func (s Stamp) Value() (driver.Value, error) {
	return s.sec, nil
}

// Scan accepts an integer second count, its textual form, a time.Time,
// or NULL, which scans as the zero Stamp.
func (s *Stamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = Stamp{}
		return nil
	case int64:
		s.sec = v
		return nil
	case []byte:
		return s.UnmarshalJSON(v)
	case string:
		return s.UnmarshalJSON([]byte(v))
	case time.Time:
		s.sec = v.Unix()
		return nil
	}
	return fmt.Errorf("cannot scan %T into a stamp: %w", src, ErrTypeMismatch)
}

// MarshalJSON renders the moment as an RFC 3339 string.
func (z Zoned) MarshalJSON() ([]byte, error) {
	return json.Marshal(z.t.Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts an RFC 3339 string.
func (z *Zoned) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return z.UnmarshalText([]byte(s))
}

// MarshalText renders the moment as an RFC 3339 string.
func (z Zoned) MarshalText() ([]byte, error) {
	return []byte(z.t.Format(time.RFC3339Nano)), nil
}

// UnmarshalText parses an RFC 3339 string, keeping its zone offset.
func (z *Zoned) UnmarshalText(data []byte) error {
	t, err := time.Parse(time.RFC3339Nano, string(data))
	if err != nil {
		return err
	}
	z.reset(t)
	return nil
}

// MarshalYAML renders the moment as an RFC 3339 string.
func (z Zoned) MarshalYAML() (any, error) {
	return z.t.Format(time.RFC3339Nano), nil
}

// UnmarshalYAML accepts an RFC 3339 string.
func (z *Zoned) UnmarshalYAML(node *yaml.Node) error {
	return z.UnmarshalText([]byte(node.Value))
}

// EncodeMsgpack writes the moment as an RFC 3339 string.
func (z Zoned) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(z.t.Format(time.RFC3339Nano))
}

// DecodeMsgpack reads an RFC 3339 string.
func (z *Zoned) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return z.UnmarshalText([]byte(s))
}

// Value stores the moment as a time.Time.
func (z Zoned) Value() (driver.Value, error) {
	return z.t, nil
}

// Scan accepts a time.Time, an RFC 3339 string or its byte form, an
// integer second count, or NULL, which scans as the zero value.
func (z *Zoned) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		z.reset(time.Time{})
		return nil
	case time.Time:
		z.reset(v)
		return nil
	case []byte:
		return z.UnmarshalText(v)
	case string:
		return z.UnmarshalText([]byte(v))
	case int64:
		z.reset(time.Unix(v, 0))
		return nil
	}
	return fmt.Errorf("cannot scan %T into a zoned time: %w", src, ErrTypeMismatch)
}
