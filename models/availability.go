package models

// AvailabilitySlot is one entry of an ustaadh's recurring weekly template.
// Times are "HH:MM" 24h strings; DayOfWeek follows time.Weekday (0 = Sunday).
// The template carries no dates: concrete free windows are derived per date
// by subtracting booked lesson windows.
type AvailabilitySlot struct {
	ID          string `bson:"id" json:"id"`
	UstaadhID   string `bson:"ustaadhId" json:"ustaadhId"`
	DayOfWeek   int    `bson:"dayOfWeek" json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime   string `bson:"startTime" json:"startTime" validate:"required"`
	EndTime     string `bson:"endTime" json:"endTime" validate:"required"`
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}

// TimeWindow is a concrete free interval on a specific date, half-open
// [StartTime, EndTime). Start/End carry the parsed minutes from midnight.
type TimeWindow struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}
