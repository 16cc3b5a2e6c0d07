// Package version provides the driver API version and the date-coded
// YYYYMMNN version numbers carried by schemas.
package version

import (
	"fmt"
	"strconv"
)

// API is the driver API version modules are built against. It is written
// to /api/version of every driver info schema.
const API int64 = 20190100

// Code is a date-coded version number: year, month and a two-digit
// sequence within the month, written as the decimal integer YYYYMMNN.
type Code int64

// Components returns the year, month and sequence of the code.
func (c Code) Components() (year, month, seq int) {
	v := int64(c)
	seq = int(v % 100)
	month = int(v / 100 % 100)
	year = int(v / 10000)
	return year, month, seq
}

// Valid returns true if the code has a four-digit year and a month in 1..12.
func (c Code) Valid() bool {
	year, month, _ := c.Components()
	return c > 0 && year >= 1000 && year <= 9999 && month >= 1 && month <= 12
}

// String returns the code as "YYYY.MM.NN".
func (c Code) String() string {
	year, month, seq := c.Components()
	return fmt.Sprintf("%04d.%02d.%02d", year, month, seq)
}

// New builds a code from its components.
func New(year, month, seq int) (Code, error) {
	if year < 1000 || year > 9999 {
		return 0, fmt.Errorf("invalid version year %d", year)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid version month %d", month)
	}
	if seq < 0 || seq > 99 {
		return 0, fmt.Errorf("invalid version sequence %d", seq)
	}
	return Code(year*10000 + month*100 + seq), nil
}

// Parse parses a version code written either as the integer "YYYYMMNN" or
// as "YYYY.MM.NN".
func Parse(s string) (Code, error) {
	if len(s) == 8 {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid version %q: %w", s, err)
		}
		c := Code(v)
		if !c.Valid() {
			return 0, fmt.Errorf("invalid version %q", s)
		}
		return c, nil
	}

	var year, month, seq int
	if len(s) != 10 || s[4] != '.' || s[7] != '.' {
		return 0, fmt.Errorf("invalid version %q: expected YYYYMMNN or YYYY.MM.NN", s)
	}
	var err error
	if year, err = strconv.Atoi(s[0:4]); err != nil {
		return 0, fmt.Errorf("invalid version %q: bad year", s)
	}
	if month, err = strconv.Atoi(s[5:7]); err != nil {
		return 0, fmt.Errorf("invalid version %q: bad month", s)
	}
	if seq, err = strconv.Atoi(s[8:10]); err != nil {
		return 0, fmt.Errorf("invalid version %q: bad sequence", s)
	}
	return New(year, month, seq)
}
