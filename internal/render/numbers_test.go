package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberToCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.57", numberToCurrency(1234.567, 2, "$"))
	assert.Equal(t, "$1,234.6", numberToCurrency(1234.567, 1, "$"))
	assert.Equal(t, "£1,234.57", numberToCurrency(1234.567, 2, "£"))
	assert.Equal(t, "-$1,234.57", numberToCurrency(-1234.567, 2, "$"))
}

func TestNumberToHuman(t *testing.T) {
	assert.Equal(t, "123.000", numberToHuman(123, 3))
	assert.Equal(t, "1.234 Thousand", numberToHuman(1234, 3))
	assert.Equal(t, "1.235 Million", numberToHuman(1234567, 3))
	assert.Equal(t, "1.235 Billion", numberToHuman(1234567890, 3))
	assert.Equal(t, "1.23 Billion", numberToHuman(1234567890, 2))
	assert.Equal(t, "-1.234 Thousand", numberToHuman(-1234, 3))
}

func TestNumberToHumanSize(t *testing.T) {
	got, err := numberToHumanSize(123, 3)
	require.NoError(t, err)
	assert.Equal(t, "123 Bytes", got)

	got, err = numberToHumanSize(1234, 3)
	require.NoError(t, err)
	assert.Equal(t, "1.205 KB", got)

	got, err = numberToHumanSize(1234567, 3)
	require.NoError(t, err)
	assert.Equal(t, "1.177 MB", got)

	got, err = numberToHumanSize(1234567890, 3)
	require.NoError(t, err)
	assert.Equal(t, "1.150 GB", got)

	got, err = numberToHumanSize(1234567890, 2)
	require.NoError(t, err)
	assert.Equal(t, "1.15 GB", got)

	_, err = numberToHumanSize(-1, 3)
	assert.Error(t, err)
}

func TestNumberToPercentage(t *testing.T) {
	assert.Equal(t, "100.000%", numberToPercentage(100, 3))
	assert.Equal(t, "100%", numberToPercentage(100, 0))
	assert.Equal(t, "302.24%", numberToPercentage(302.24398923423, 2))
}

func TestNumberWithDelimiter(t *testing.T) {
	assert.Equal(t, "12,345,678", numberWithDelimiter(12345678, ","))
	assert.Equal(t, "12,345,678.05", numberWithDelimiter(12345678.05, ","))
	assert.Equal(t, "12_345_678", numberWithDelimiter(12345678, "_"))
	assert.Equal(t, "123", numberWithDelimiter(123, ","))
}

func TestNumberWithPrecision(t *testing.T) {
	assert.Equal(t, "111.234", numberWithPrecision(111.2345, 3, false))
	assert.Equal(t, "111.23", numberWithPrecision(111.2345, 2, false))
	assert.Equal(t, "13.00000", numberWithPrecision(13, 5, false))
	assert.Equal(t, "13", numberWithPrecision(13, 5, true))
	assert.Equal(t, "13.5", numberWithPrecision(13.5, 5, true))
}

func TestFormatNumberGrouping(t *testing.T) {
	assert.Equal(t, "1,234,567", formatNumber(1234567, 0, ",", "."))
	assert.Equal(t, "1234567", formatNumber(1234567, 0, "", "."))
	assert.Equal(t, "-1,234.57", formatNumber(-1234.567, 2, ",", "."))
	assert.Equal(t, "0.500", formatNumber(0.5, 3, ",", "."))
}
