// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the DD-Mon-YYYY
// format. The null date is encoded as an empty string.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseDate.
// An empty string is decoded as the null date.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	nd, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	if d.IsZero() {
		return "", nil
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A scalar value is parsed
// using ParseDate and a mapping with day, month and year keys is
// decoded as a Record and validated using FromRecord, for example:
//
//	settlement: 15-Feb-2024
//	maturity:
//	  day: 15
//	  month: Feb
//	  year: 2029
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return d.UnmarshalText([]byte(value.Value))
	case yaml.MappingNode:
		var r Record
		if err := value.Decode(&r); err != nil {
			return err
		}
		nd, err := FromRecord(r)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*d = nd
		return nil
	}
	return fmt.Errorf("line %d: a date must be a scalar or a mapping of day, month and year", value.Line)
}
