package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleMeeting(t *testing.T) {
	parsed, err := Parse("M-W 0800-0930")
	require.NoError(t, err)
	assert.False(t, parsed.NoMeeting)
	require.Len(t, parsed.Meetings, 1)
	assert.Equal(t, []int{0, 2}, parsed.Meetings[0].Days)
	assert.Equal(t, 800, parsed.Meetings[0].Start)
	assert.Equal(t, 930, parsed.Meetings[0].End)
}

func TestParseAlternateDayCodes(t *testing.T) {
	parsed, err := Parse("WED-SAT 1300-1430")
	require.NoError(t, err)
	require.Len(t, parsed.Meetings, 1)
	assert.Equal(t, []int{2, 5}, parsed.Meetings[0].Days)
}

func TestParseDailyToken(t *testing.T) {
	parsed, err := Parse("D 0900-1000")
	require.NoError(t, err)
	require.Len(t, parsed.Meetings, 1)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, parsed.Meetings[0].Days)
}

func TestParseSentinels(t *testing.T) {
	for _, raw := range []string{"TBA", "TUTORIAL", "TBA (see department)"} {
		parsed, err := Parse(raw)
		require.NoError(t, err, raw)
		assert.True(t, parsed.NoMeeting, raw)
		assert.Empty(t, parsed.Meetings, raw)
	}
}

func TestParseMultiMeeting(t *testing.T) {
	parsed, err := Parse("M 0800-0930(ENGLISH);T 1000-1130")
	require.NoError(t, err)
	require.Len(t, parsed.Meetings, 2)
	assert.Equal(t, []int{0}, parsed.Meetings[0].Days)
	assert.Equal(t, 930, parsed.Meetings[0].End)
	assert.Equal(t, []int{1}, parsed.Meetings[1].Days)
	assert.Equal(t, 1000, parsed.Meetings[1].Start)
}

func TestParseTrailingAnnotation(t *testing.T) {
	parsed, err := Parse("F 1100-1230(CONV)")
	require.NoError(t, err)
	require.Len(t, parsed.Meetings, 1)
	assert.Equal(t, 1230, parsed.Meetings[0].End)
}

func TestParseMalformed(t *testing.T) {
	cases := []string{
		"M-X 0800-0930",  // unknown day code
		"0800-0930",      // missing day field
		"M 0800",         // time field is not a range
		"M 08AM-0930",    // non-numeric time
		"M 800-930",      // not 4-digit times
		"M 0815-0930",    // off-grid minute
		"M 2500-2630",    // impossible hour
	}
	for _, raw := range cases {
		_, err := Parse(raw)
		require.Error(t, err, raw)
		var malformedErr *MalformedError
		assert.ErrorAs(t, err, &malformedErr, raw)
	}
}

func TestMeetingString(t *testing.T) {
	m := Meeting{Days: []int{0, 3}, Start: 800, End: 930}
	assert.Equal(t, "M-TH 0800-0930", m.String())
}
