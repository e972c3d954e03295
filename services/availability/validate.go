package availability

import (
	"sort"

	"alabraar/models"
)

type parsedSlot struct {
	index int // position in the submitted batch
	start int
	end   int
}

// ValidateTemplate checks a full weekly template submission: every slot must
// carry well-formed HH:MM times with start < end, and no two slots on the
// same day may overlap. Ranges are half-open [start, end), so a slot ending
// exactly where the next begins is fine. The whole batch is rejected on the
// first violation.
func ValidateTemplate(slots []models.AvailabilitySlot) error {
	byDay := make(map[int][]parsedSlot)

	for i, slot := range slots {
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			return newSlotError(slot.DayOfWeek, i, "dayOfWeek must be 0-6")
		}
		start, err := ParseClock(slot.StartTime)
		if err != nil {
			return newSlotError(slot.DayOfWeek, i, err.Error())
		}
		end, err := ParseClock(slot.EndTime)
		if err != nil {
			return newSlotError(slot.DayOfWeek, i, err.Error())
		}
		if start >= end {
			return newSlotError(slot.DayOfWeek, i, "startTime must be before endTime")
		}
		byDay[slot.DayOfWeek] = append(byDay[slot.DayOfWeek], parsedSlot{index: i, start: start, end: end})
	}

	for day, daySlots := range byDay {
		sort.Slice(daySlots, func(a, b int) bool { return daySlots[a].start < daySlots[b].start })
		for i := 1; i < len(daySlots); i++ {
			prev, cur := daySlots[i-1], daySlots[i]
			if cur.start < prev.end {
				return newOverlapError(day, prev.index, cur.index)
			}
		}
	}

	return nil
}
