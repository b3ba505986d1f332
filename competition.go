package sharetelemetry

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrCompetitionNotFound = errors.New("sharetelemetry: competition not found")

// NewCompetition creates a Competition with a given name, creating a UUID for the competition as well.
func NewCompetition(name string) *Competition {
	return &Competition{
		ID:      uuid.New(),
		Name:    name,
		Created: time.Now(),
	}
}

// A Competition is a roster of Drivers and a set of EventGroups. Each EventGroup
// contributes one term (the driver's best time within that group) to a driver's total.
type Competition struct {
	ID      uuid.UUID
	Name    string
	Created time.Time
	Updated time.Time
	Deleted time.Time

	// Drivers is the competition roster. Order is preserved as configured and
	// duplicate entries are not removed; a driver listed twice ranks twice.
	Drivers []Driver

	EventGroups []*EventGroup
}

// DriverIDs returns the roster driver ids in configured order, duplicates included.
func (c *Competition) DriverIDs() []int64 {
	ids := make([]int64, 0, len(c.Drivers))

	for _, driver := range c.Drivers {
		ids = append(ids, driver.ID)
	}

	return ids
}

// DriverIDSet returns the set of roster driver ids, used to filter raw results.
func (c *Competition) DriverIDSet() map[int64]bool {
	set := make(map[int64]bool, len(c.Drivers))

	for _, driver := range c.Drivers {
		set[driver.ID] = true
	}

	return set
}

type Driver struct {
	ID        int64
	FirstName string
	LastName  string
}

func (d Driver) FullName() string {
	return fmt.Sprintf("%s %s", d.FirstName, d.LastName)
}

// An EventGroup is a track plus the ordered time windows during which telemetry
// sessions on that track count toward the group.
type EventGroup struct {
	ID      int64
	TrackID int64

	Sessions []*EventSession
}

// An EventSession is a time window within an EventGroup. Both bounds are inclusive.
type EventSession struct {
	ID       int64
	FromTime time.Time
	ToTime   time.Time
}

// Contains reports whether t falls within the session window.
func (s *EventSession) Contains(t time.Time) bool {
	return !t.Before(s.FromTime) && !t.After(s.ToTime)
}
