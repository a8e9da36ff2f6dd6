package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p, err := New(2026, 3)
	require.NoError(t, err)
	assert.Equal(t, 2026, p.Year)
	assert.Equal(t, time.March, p.Month)

	_, err = New(2026, 0)
	assert.Error(t, err)

	_, err = New(2026, 13)
	assert.Error(t, err)

	_, err = New(1999, 6)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	p, err := Parse("2026-03")
	require.NoError(t, err)
	assert.Equal(t, 2026, p.Year)
	assert.Equal(t, time.March, p.Month)

	_, err = Parse("2026-3")
	assert.Error(t, err)

	_, err = Parse("202603")
	assert.Error(t, err)

	_, err = Parse("2026-13")
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	p, err := New(2026, 3)
	require.NoError(t, err)
	assert.Equal(t, "2026-03", p.Key())

	p, err = New(2026, 12)
	require.NoError(t, err)
	assert.Equal(t, "2026-12", p.Key())
}

func TestBounds(t *testing.T) {
	p, err := New(2026, 2)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), p.End())
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), p.Last())
}

func TestLastLeapYear(t *testing.T) {
	p, err := New(2028, 2)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC), p.Last())
}

func TestContains(t *testing.T) {
	p, err := New(2026, 2)
	require.NoError(t, err)

	assert.True(t, p.Contains(p.Start()))
	assert.True(t, p.Contains(time.Date(2026, time.February, 15, 12, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(p.End()))
	assert.False(t, p.Contains(time.Date(2026, time.January, 31, 23, 59, 59, 0, time.UTC)))
}

func TestNext(t *testing.T) {
	p, err := New(2026, 12)
	require.NoError(t, err)

	next := p.Next()
	assert.Equal(t, 2027, next.Year)
	assert.Equal(t, time.January, next.Month)
}

func TestFromDate(t *testing.T) {
	p := FromDate(time.Date(2026, time.August, 31, 10, 30, 0, 0, time.UTC))
	assert.Equal(t, "2026-08", p.Key())
}
