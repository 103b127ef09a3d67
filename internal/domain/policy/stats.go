package policy

import (
	"math"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

// UnspecifiedMenu labels meal registrations without a menu choice.
const UnspecifiedMenu = "unspecified"

// ComputeStats derives the event statistics from grouped counts.
// CANCELLED participations count towards the total used by every rate.
func ComputeStats(
	event *entities.Event,
	byStatus map[domain.ParticipationStatus]int64,
	mealCount int64,
	menus []entities.MenuCount,
) entities.EventStats {
	breakdown := entities.StatusBreakdown{
		Registered: byStatus[domain.StatusRegistered],
		Confirmed:  byStatus[domain.StatusConfirmed],
		Present:    byStatus[domain.StatusPresent],
		Absent:     byStatus[domain.StatusAbsent],
		Excused:    byStatus[domain.StatusExcused],
		Cancelled:  byStatus[domain.StatusCancelled],
	}
	var total int64
	for _, s := range domain.ParticipationStatuses {
		total += breakdown.Get(s)
	}

	byMenu := make([]entities.MenuCount, 0, len(menus))
	for _, m := range menus {
		if m.Menu == "" {
			m.Menu = UnspecifiedMenu
		}
		byMenu = append(byMenu, m)
	}

	return entities.EventStats{
		EventID:          event.ID,
		Total:            total,
		ByStatus:         breakdown,
		Meals:            entities.MealBreakdown{Total: mealCount, ByMenu: byMenu},
		AttendanceRate:   Rate(breakdown.Present, total),
		ConfirmationRate: Rate(breakdown.Confirmed+breakdown.Present, total),
		MealRate:         Rate(mealCount, total),
		Capacity:         CheckCapacity(event, total),
	}
}

// Rate returns part/total as a percentage rounded to one decimal, 0 when total is 0.
func Rate(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
