package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDdmmyyyyToYyyymmdd(t *testing.T) {
	got, err := DdmmyyyyToYyyymmdd("15112025")
	require.NoError(t, err)
	assert.Equal(t, "20251115", got)

	_, err = DdmmyyyyToYyyymmdd("151120")
	assert.Error(t, err)
}

func TestYyyymmddToDdmmyyyy(t *testing.T) {
	got, err := YyyymmddToDdmmyyyy("20251001")
	require.NoError(t, err)
	assert.Equal(t, "01102025", got)

	_, err = YyyymmddToDdmmyyyy("")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	for _, d := range []string{"20250101", "20241231", "20240229", "19991115"} {
		ddmm, err := YyyymmddToDdmmyyyy(d)
		require.NoError(t, err)
		back, err := DdmmyyyyToYyyymmdd(ddmm)
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}
}

func TestIsValidDdmmyyyy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "15112025", true},
		{"leap day", "29022024", true},
		{"non-leap february 29", "29022025", false},
		{"month 13", "15132025", false},
		{"day zero", "00112025", false},
		{"day 31 in november", "31112025", false},
		{"too short", "1511202", false},
		{"letters", "15a12025", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDdmmyyyy(tt.input))
		})
	}
}

func TestIsValidYyyymmdd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "20251115", true},
		{"leap day", "20240229", true},
		{"non-leap february 29", "20250229", false},
		{"month zero", "20250015", false},
		{"day 32", "20250132", false},
		{"too long", "202511155", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidYyyymmdd(tt.input))
		})
	}
}

func TestFormatToYyyymmdd(t *testing.T) {
	got, err := FormatDdmmyyyy.ToYyyymmdd("15112025")
	require.NoError(t, err)
	assert.Equal(t, "20251115", got)

	got, err = FormatYyyymmdd.ToYyyymmdd("20251115")
	require.NoError(t, err)
	assert.Equal(t, "20251115", got)

	_, err = FormatDdmmyyyy.ToYyyymmdd("15132025")
	require.Error(t, err)

	_, err = FormatYyyymmdd.ToYyyymmdd("20251315")
	require.Error(t, err)
}

func TestFormatIsValid(t *testing.T) {
	assert.True(t, FormatDdmmyyyy.IsValid("15112025"))
	assert.False(t, FormatDdmmyyyy.IsValid("20251115"))
	assert.True(t, FormatYyyymmdd.IsValid("20251115"))
}
