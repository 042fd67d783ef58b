package competition

import (
	"fmt"
	"time"
)

// DateLayout is the timestamp layout used by competition data files.
const DateLayout = "2006-01-02 15:04:05"

// Competition is an event with a limited number of places clubs can book.
type Competition struct {
	Name           string
	Date           time.Time
	NumberOfPlaces int
}

func (c Competition) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("competition name is required")
	}
	if c.Date.IsZero() {
		return fmt.Errorf("competition date is required for %s", c.Name)
	}
	if c.NumberOfPlaces < 0 {
		return fmt.Errorf("competition places must be >= 0 for %s", c.Name)
	}

	return nil
}

// IsPast reports whether the competition already started at now.
func (c Competition) IsPast(now time.Time) bool {
	return !c.Date.After(now)
}
