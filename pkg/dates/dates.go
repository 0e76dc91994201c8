// Package dates implements the 8-digit stay-date formats used at the API
// boundary (DDMMYYYY for the dashboard API, YYYYMMDD for the channel API)
// and their conversion to the lexicographically sortable YYYYMMDD form
// stored in the secondary-index sort keys.
package dates

import (
	"fmt"
	"time"
)

// Format identifies which 8-digit wire format an API generation accepts.
type Format string

const (
	// FormatDdmmyyyy is day-month-year, e.g. "15112025".
	FormatDdmmyyyy Format = "ddmmyyyy"

	// FormatYyyymmdd is year-month-day, e.g. "20251115".
	FormatYyyymmdd Format = "yyyymmdd"
)

// DdmmyyyyToYyyymmdd converts "15112025" to "20251115".
func DdmmyyyyToYyyymmdd(ddmmyyyy string) (string, error) {
	if len(ddmmyyyy) != 8 {
		return "", fmt.Errorf("invalid date format, expected DDMMYYYY, got: %q", ddmmyyyy)
	}
	day := ddmmyyyy[0:2]
	month := ddmmyyyy[2:4]
	year := ddmmyyyy[4:8]
	return year + month + day, nil
}

// YyyymmddToDdmmyyyy converts "20251115" to "15112025".
func YyyymmddToDdmmyyyy(yyyymmdd string) (string, error) {
	if len(yyyymmdd) != 8 {
		return "", fmt.Errorf("invalid date format, expected YYYYMMDD, got: %q", yyyymmdd)
	}
	year := yyyymmdd[0:4]
	month := yyyymmdd[4:6]
	day := yyyymmdd[6:8]
	return day + month + year, nil
}

// IsValidDdmmyyyy reports whether s is a calendar-valid DDMMYYYY string.
func IsValidDdmmyyyy(s string) bool {
	if len(s) != 8 || !isDigits(s) {
		return false
	}
	day := atoi2(s[0:2])
	month := atoi2(s[2:4])
	year := atoi4(s[4:8])
	return validCalendarDate(year, month, day)
}

// IsValidYyyymmdd reports whether s is a calendar-valid YYYYMMDD string.
func IsValidYyyymmdd(s string) bool {
	if len(s) != 8 || !isDigits(s) {
		return false
	}
	year := atoi4(s[0:4])
	month := atoi2(s[4:6])
	day := atoi2(s[6:8])
	return validCalendarDate(year, month, day)
}

// IsValid validates s against the given wire format.
func (f Format) IsValid(s string) bool {
	if f == FormatYyyymmdd {
		return IsValidYyyymmdd(s)
	}
	return IsValidDdmmyyyy(s)
}

// ToYyyymmdd converts a wire-format date to the canonical sortable
// form, rejecting anything that is not a real calendar date. YYYYMMDD
// input passes through unchanged.
func (f Format) ToYyyymmdd(s string) (string, error) {
	if !f.IsValid(s) {
		return "", fmt.Errorf("invalid %s date: %q", string(f), s)
	}
	if f == FormatYyyymmdd {
		return s, nil
	}
	return DdmmyyyyToYyyymmdd(s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func atoi2(s string) int { return int(s[0]-'0')*10 + int(s[1]-'0') }

func atoi4(s string) int {
	return int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
}

func validCalendarDate(year, month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	// Day 0 of the next month is the last day of this month.
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return day <= daysInMonth
}
