package histogram

// HoursPerWeek is the number of weekly slots; slots run 0..167.
const HoursPerWeek = 24 * 7

// epochAlignmentHours shifts the absolute hour index so that slot 0
// falls on the reference hour-of-week of the histogram epoch. The value
// is a fixed convention shared with every producer and consumer of the
// format; it must never be re-derived or changed.
const epochAlignmentHours = 96

// WeeklySlot maps an absolute hourly bucket index to its hour-of-week
// slot in [0, HoursPerWeek). The mapping is periodic: indices one week
// apart land in the same slot.
func WeeklySlot(index uint64) uint16 {
	slot := int64(index%HoursPerWeek) - epochAlignmentHours%HoursPerWeek
	if slot < 0 {
		slot += HoursPerWeek
	}

	return uint16(slot)
}
