package holiday

import "time"

type HolidayType string

const (
	HolidayTypePublic     HolidayType = "public"
	HolidayTypeOptional   HolidayType = "optional"
	HolidayTypeRestricted HolidayType = "restricted"
)

type Holiday struct {
	ID          string
	Date        time.Time // calendar date, midnight UTC
	Name        string
	Type        HolidayType
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
