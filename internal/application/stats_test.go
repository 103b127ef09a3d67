package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

func TestEventStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := f.publishedEvent(t, withCapacity(10), withMenus("standard", "végétarien"))

	f.register(t, e, "u-1", "standard")
	f.register(t, e, "u-2")
	f.validate(t, f.register(t, e, "u-3", "standard"), domain.StatusConfirmed, "")
	f.validate(t, f.register(t, e, "u-4", "végétarien"), domain.StatusPresent, "")
	f.validate(t, f.register(t, e, "u-5", ""), domain.StatusPresent, "")
	f.validate(t, f.register(t, e, "u-6"), domain.StatusPresent, "")
	f.validate(t, f.register(t, e, "u-7"), domain.StatusAbsent, "")
	f.validate(t, f.register(t, e, "u-8"), domain.StatusExcused, "arrêt maladie")
	cancelled := f.register(t, e, "u-9")
	_, err := f.participations.Cancel(ctx, actor(t, "u-9", domain.RoleUser), e.ID, cancelled.ID)
	require.NoError(t, err)

	stats, err := f.stats.EventStats(ctx, actor(t, "u-1", domain.RoleUser), e.ID)
	require.NoError(t, err)

	assert.Equal(t, e.ID, stats.EventID)
	assert.Equal(t, int64(9), stats.Total)
	assert.Equal(t, entities.StatusBreakdown{
		Registered: 2, Confirmed: 1, Present: 3, Absent: 1, Excused: 1, Cancelled: 1,
	}, stats.ByStatus)
	assert.Equal(t, 33.3, stats.AttendanceRate)
	assert.Equal(t, 44.4, stats.ConfirmationRate)
	assert.Equal(t, int64(4), stats.Meals.Total)
	assert.Equal(t, 44.4, stats.MealRate)
	assert.Equal(t, []entities.MenuCount{
		{Menu: "standard", Count: 2},
		{Menu: "unspecified", Count: 1},
		{Menu: "végétarien", Count: 1},
	}, sortedMenus(stats.Meals.ByMenu))

	require.NotNil(t, stats.Capacity.Max)
	assert.Equal(t, 10, *stats.Capacity.Max)
	assert.False(t, stats.Capacity.IsFull)
	require.NotNil(t, stats.Capacity.Available)
	assert.Equal(t, 1, *stats.Capacity.Available)

	var sum int64
	for _, s := range domain.ParticipationStatuses {
		sum += stats.ByStatus.Get(s)
	}
	assert.Equal(t, stats.Total, sum)
}

func TestEventStatsEmptyEvent(t *testing.T) {
	f := newFixture(t)
	e := f.publishedEvent(t)

	stats, err := f.stats.EventStats(context.Background(), actor(t, "u-1", domain.RoleUser), e.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.AttendanceRate)
	assert.Zero(t, stats.ConfirmationRate)
	assert.Zero(t, stats.MealRate)
	assert.Empty(t, stats.Meals.ByMenu)
	assert.Nil(t, stats.Capacity.Max)
	assert.Nil(t, stats.Capacity.Available)
	assert.False(t, stats.Capacity.IsFull)
}

func TestEventStatsTenantIsolation(t *testing.T) {
	f := newFixture(t)
	e := f.publishedEvent(t)

	_, err := f.stats.EventStats(context.Background(), actorIn(t, "u-1", "sdis-02", domain.RoleAdmin), e.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func sortedMenus(in []entities.MenuCount) []entities.MenuCount {
	out := append([]entities.MenuCount(nil), in...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Menu < out[j-1].Menu; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
