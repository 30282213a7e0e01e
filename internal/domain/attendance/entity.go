package attendance

import "time"

// SentinelPunch is the wire value meaning "no clock event recorded" for a
// punch slot.
const SentinelPunch = "00:00"

// PunchDay holds the flat punch list recorded for one employee on one date.
// Element 2*i is shift i's clock-in and 2*i+1 its clock-out.
type PunchDay struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Punches    []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Classification says why a date does or does not require attendance.
type Classification struct {
	IsHoliday bool `json:"is_holiday"`
	IsLeave   bool `json:"is_leave"`
	IsWeekend bool `json:"is_weekend"`
}

// IsValidAttendanceDay reports whether attendance is required on the date.
func (c Classification) IsValidAttendanceDay() bool {
	return !(c.IsHoliday || c.IsLeave || c.IsWeekend)
}

// MissPunchCount is the missed-punch tally over a day's expected punch slots.
type MissPunchCount struct {
	MissPunchCount int  `json:"miss_punch_count"`
	HasMissPunch   bool `json:"has_miss_punch"`
}
