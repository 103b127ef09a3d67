package tz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	winter := time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC)
	summer := time.Date(2026, 7, 15, 8, 30, 0, 0, time.UTC)

	assert.Equal(t, "15/01/2026 09:30", Format(winter))
	assert.Equal(t, "15/07/2026 10:30", Format(summer))
	assert.Equal(t, "", FormatPtr(nil))
	assert.Equal(t, "15/07/2026 10:30", FormatPtr(&summer))
}
