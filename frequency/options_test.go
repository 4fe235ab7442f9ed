package frequency

import (
	"testing"
	"time"

	"github.com/datazip-inc/olake-syncform/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItems(t *testing.T) {
	items := Items(i18n.Default())

	require.Len(t, items, len(Options))
	assert.Equal(t, Item{Value: "manual", Text: "manual"}, items[0])
	assert.Equal(t, Item{Value: "5m", Text: "Every 5 min"}, items[1])
	assert.Equal(t, Item{Value: "1440m", Text: "Every 24 hours"}, items[len(items)-1])

	for i, option := range Options {
		assert.Equal(t, option.Value, items[i].Value, "order must follow the option table")
	}
}

func TestOption_Interval(t *testing.T) {
	tests := []struct {
		value    string
		expected time.Duration
	}{
		{value: "manual", expected: 0},
		{value: "5m", expected: 5 * time.Minute},
		{value: "60m", expected: time.Hour},
		{value: "1440m", expected: 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			option, found := Lookup(tt.value)
			require.True(t, found)

			interval, err := option.Interval()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, interval)
		})
	}

	_, err := Option{Value: "weekly"}.Interval()
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	option, found := Lookup("manual")
	assert.True(t, found)
	assert.True(t, option.IsManual())

	_, found = Lookup("")
	assert.False(t, found)

	assert.Contains(t, Values(), "manual, 5m, 15m")
}
