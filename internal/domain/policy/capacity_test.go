package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fmpa/internal/domain/entities"
)

func TestCheckCapacity(t *testing.T) {
	intPtr := func(i int) *int { return &i }

	tests := []struct {
		name          string
		max           *int
		count         int64
		wantFull      bool
		wantAvailable *int
	}{
		{name: "unbounded", max: nil, count: 120, wantFull: false, wantAvailable: nil},
		{name: "empty", max: intPtr(2), count: 0, wantFull: false, wantAvailable: intPtr(2)},
		{name: "one left", max: intPtr(2), count: 1, wantFull: false, wantAvailable: intPtr(1)},
		{name: "full", max: intPtr(2), count: 2, wantFull: true, wantAvailable: intPtr(0)},
		{name: "overbooked clamps to zero", max: intPtr(2), count: 5, wantFull: true, wantAvailable: intPtr(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckCapacity(&entities.Event{MaxParticipants: tt.max}, tt.count)
			assert.Equal(t, tt.wantFull, got.IsFull)
			assert.Equal(t, tt.wantAvailable, got.Available)
			assert.Equal(t, tt.max, got.Max)
		})
	}
}
