package attendance

import (
	"strconv"
	"strings"

	"github.com/attendhq/rules-engine-go/internal/domain/attendance"
	"github.com/attendhq/rules-engine-go/internal/domain/rules"
)

// parseClock converts "HH:mm" to minutes since midnight.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func isSentinel(punch string) bool {
	return strings.TrimSpace(punch) == "" || punch == attendance.SentinelPunch
}

// punchAt returns the punch in slot i, with missing slots reading as the
// sentinel. Slot 2*i is shift i's clock-in, slot 2*i+1 its clock-out.
func punchAt(punches []string, i int) string {
	if i >= len(punches) {
		return attendance.SentinelPunch
	}
	return punches[i]
}

// ShiftMinutes returns the scheduled duration of one shift window. Windows
// that do not parse or run backwards count as zero.
func ShiftMinutes(shift rules.ShiftWindow) int {
	start, ok := parseClock(shift.Start)
	if !ok {
		return 0
	}
	end, ok := parseClock(shift.End)
	if !ok {
		return 0
	}
	if end < start {
		return 0
	}
	return end - start
}

// ScheduledMinutes sums the scheduled durations of all shifts.
func ScheduledMinutes(shifts []rules.ShiftWindow) int {
	total := 0
	for _, s := range shifts {
		total += ShiftMinutes(s)
	}
	return total
}

// WorkedShiftMinutes computes the minutes credited for one shift given its
// clock-in/clock-out pair:
//   - both punches sentinel: zero, nothing was worked;
//   - exactly one sentinel: the full scheduled duration, the recorded punch
//     proves presence and the missing one is charged separately as a missed
//     punch;
//   - both present: the overlap of [in, out] with the shift window, floored
//     at zero.
func WorkedShiftMinutes(shift rules.ShiftWindow, in, out string) int {
	inMissing := isSentinel(in)
	outMissing := isSentinel(out)

	switch {
	case inMissing && outMissing:
		return 0
	case inMissing || outMissing:
		return ShiftMinutes(shift)
	}

	inMin, ok := parseClock(in)
	if !ok {
		return ShiftMinutes(shift)
	}
	outMin, ok := parseClock(out)
	if !ok {
		return ShiftMinutes(shift)
	}
	shiftStart, ok := parseClock(shift.Start)
	if !ok {
		return 0
	}
	shiftEnd, ok := parseClock(shift.End)
	if !ok {
		return 0
	}

	start := inMin
	if shiftStart > start {
		start = shiftStart
	}
	end := outMin
	if shiftEnd < end {
		end = shiftEnd
	}
	if end < start {
		return 0
	}
	return end - start
}

// TotalWorkedMinutes pairs the flat punch list against the shifts and sums
// the credited minutes. Punches beyond 2*len(shifts) are ignored.
func TotalWorkedMinutes(shifts []rules.ShiftWindow, punches []string) int {
	total := 0
	for i, shift := range shifts {
		total += WorkedShiftMinutes(shift, punchAt(punches, 2*i), punchAt(punches, 2*i+1))
	}
	return total
}

// CountMissedPunches tallies sentinel slots over the day's expected
// 2*len(shifts) punch slots. Slots the punch list does not reach count as
// missed.
func CountMissedPunches(shifts []rules.ShiftWindow, punches []string) attendance.MissPunchCount {
	missed := 0
	for i := 0; i < 2*len(shifts); i++ {
		if isSentinel(punchAt(punches, i)) {
			missed++
		}
	}
	return attendance.MissPunchCount{
		MissPunchCount: missed,
		HasMissPunch:   missed > 0,
	}
}

// hasRealPunch reports whether any slot holds a non-sentinel punch.
func hasRealPunch(punches []string) bool {
	for _, p := range punches {
		if !isSentinel(p) {
			return true
		}
	}
	return false
}
