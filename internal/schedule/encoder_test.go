package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSingleMeeting(t *testing.T) {
	// M-W 0800-0930 covers periods 2..4 on Monday and Wednesday.
	slots, err := Encode("M-W 0800-0930")
	require.NoError(t, err)
	assert.Equal(t, SlotSet{2, 3, 4, 62, 63, 64}, slots)
}

func TestEncodeHalfHourBoundaries(t *testing.T) {
	// 0730 starts the second half of the 0700 hour pair.
	slots, err := Encode("T 0730-0830")
	require.NoError(t, err)
	assert.Equal(t, SlotSet{31, 32}, slots)

	// First period of the day.
	slots, err = Encode("M 0700-0730")
	require.NoError(t, err)
	assert.Equal(t, SlotSet{0}, slots)

	// Last period of the day.
	slots, err = Encode("S 2130-2200")
	require.NoError(t, err)
	assert.Equal(t, SlotSet{179}, slots)
}

func TestEncodeSentinelIsEmpty(t *testing.T) {
	slots, err := Encode("TBA")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestEncodeMultiMeetingUnions(t *testing.T) {
	slots, err := Encode("M 0800-0930(ENGLISH);T 1000-1130")
	require.NoError(t, err)
	assert.Equal(t, SlotSet{2, 3, 4, 36, 37, 38}, slots)
}

func TestEncodeDeterministic(t *testing.T) {
	first, err := Encode("D 0900-1000")
	require.NoError(t, err)
	second, err := Encode("D 0900-1000")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, 10)
}

func TestEncodeInvertedRange(t *testing.T) {
	_, err := Encode("M 0930-0800")
	require.Error(t, err)
	var malformedErr *MalformedError
	assert.ErrorAs(t, err, &malformedErr)

	_, err = Encode("M 0900-0900")
	require.Error(t, err)
}

func TestEncodeOffGrid(t *testing.T) {
	// 0630 starts before the grid opens at 0700.
	_, err := Encode("M 0630-0800")
	require.Error(t, err)

	// 2230 ends after the grid closes at 2200.
	_, err = Encode("M 2100-2230")
	require.Error(t, err)
}

func TestPeriodLabels(t *testing.T) {
	assert.Equal(t, "0700-0730", PeriodLabel(0))
	assert.Equal(t, "0730-0800", PeriodLabel(1))
	assert.Equal(t, "2100-2130", PeriodLabel(28))
}
