package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCell(t *testing.T) {
	assert.Equal(t, "COMISARIA 1", NormalizeCell("  comisaria 1 "))
	assert.Equal(t, "", NormalizeCell("nan"))
	assert.Equal(t, "", NormalizeCell("None"))
	assert.Equal(t, "", NormalizeCell("NaT"))
	assert.Equal(t, "", NormalizeCell("   "))
	assert.Equal(t, "007", NormalizeCell("007"), "los ceros iniciales no se tocan")
}

func TestSafeGet(t *testing.T) {
	row := []string{"a", " b ", "c"}

	assert.Equal(t, "b", SafeGet(row, 1))
	assert.Equal(t, "", SafeGet(row, 5), "índice fuera de la fila devuelve vacío")
	assert.Equal(t, "", SafeGet(row, -1))
	assert.Equal(t, "", SafeGet(nil, 0))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "ENERO", MonthName(1))
	assert.Equal(t, "DICIEMBRE", MonthName(12))
	assert.Equal(t, NoDateLabel, MonthName(0))
	assert.Equal(t, NoDateLabel, MonthName(13))
}

func TestParseCellDate(t *testing.T) {
	// Día-primero: 05/01 es 5 de enero, no 1 de mayo.
	parsed, ok := ParseCellDate("05/01/2025")
	require.True(t, ok)
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 5, parsed.Day())

	parsed, ok = ParseCellDate("20/03/2025 14:30")
	require.True(t, ok)
	assert.Equal(t, time.March, parsed.Month())

	_, ok = ParseCellDate("sin dato")
	assert.False(t, ok)
	_, ok = ParseCellDate("")
	assert.False(t, ok)
}
