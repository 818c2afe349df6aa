package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"present", "Present"},
		{"2020-01", "Jan 2020"},
		{"1999-12", "Dec 1999"},
		{"2021-06", "Jun 2021"},
		{"2021-13", "2021-13"},
		{"2021-00", "2021-00"},
		{"June 2021", "June 2021"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.in))
		})
	}
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "Jan 2020 - Present", FormatDateRange("2020-01", "present"))
	assert.Equal(t, "Sep 2015 - Jun 2019", FormatDateRange("2015-09", "2019-06"))
	assert.Equal(t, "Present", FormatDateRange("", "present"))
	assert.Equal(t, "Sep 2015", FormatDateRange("2015-09", ""))
	assert.Equal(t, "", FormatDateRange("", ""))
}
