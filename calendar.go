package plotaxis

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	strftime "github.com/lestrrat/go-strftime"
	"github.com/sirupsen/logrus"
)

// Unit is a calendar unit used to snap time ticks.
type Unit int

const (
	UnitDay Unit = iota
	UnitMonth
	UnitYear
)

func (u Unit) String() string {
	switch u {
	case UnitDay:
		return "day"
	case UnitMonth:
		return "month"
	}
	return "year"
}

// Calendar resolves calendar boundaries and formats instants in a named
// time zone.
type Calendar interface {
	// StartOf returns the first instant of the unit containing t.
	StartOf(t time.Time, tz string, u Unit) time.Time
	// EndOf returns the last millisecond of the unit containing t.
	EndOf(t time.Time, tz string, u Unit) time.Time
	// Format renders t with a strftime pattern. %L is the zero-padded
	// millisecond of the second.
	Format(t time.Time, tz string, pattern string) string
}

// ZoneCalendar is the default Calendar, backed by the system time zone
// database. Unknown zones fall back to UTC.
type ZoneCalendar struct {
	log logrus.FieldLogger

	mu    sync.Mutex
	zones map[string]*time.Location
}

// NewZoneCalendar returns a ZoneCalendar that reports unknown zones to log.
// A nil log uses the logrus standard logger.
func NewZoneCalendar(log logrus.FieldLogger) *ZoneCalendar {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ZoneCalendar{log: log, zones: make(map[string]*time.Location)}
}

func (c *ZoneCalendar) location(tz string) *time.Location {
	c.mu.Lock()
	defer c.mu.Unlock()
	if loc, ok := c.zones[tz]; ok {
		return loc
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		c.log.WithError(err).WithField("timezone", tz).Warn("unknown timezone, using UTC")
		loc = time.UTC
	}
	c.zones[tz] = loc
	return loc
}

func (c *ZoneCalendar) StartOf(t time.Time, tz string, u Unit) time.Time {
	t = t.In(c.location(tz))
	y, m, d := t.Date()
	switch u {
	case UnitDay:
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	case UnitMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	}
	return time.Date(y, time.January, 1, 0, 0, 0, 0, t.Location())
}

func (c *ZoneCalendar) EndOf(t time.Time, tz string, u Unit) time.Time {
	start := c.StartOf(t, tz, u)
	var next time.Time
	switch u {
	case UnitDay:
		next = start.AddDate(0, 0, 1)
	case UnitMonth:
		next = start.AddDate(0, 1, 0)
	default:
		next = start.AddDate(1, 0, 0)
	}
	return next.Add(-time.Millisecond)
}

func (c *ZoneCalendar) Format(t time.Time, tz string, pattern string) string {
	t = t.In(c.location(tz))
	ms := fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
	var b strings.Builder
	for i, part := range strings.Split(pattern, "%L") {
		if i > 0 {
			b.WriteString(ms)
		}
		if part == "" {
			continue
		}
		s, err := strftime.Format(part, t)
		if err != nil {
			c.log.WithError(err).WithField("pattern", part).Error("cannot format timestamp")
			s = t.Format(time.RFC3339)
		}
		b.WriteString(s)
	}
	return b.String()
}

// msTime converts milliseconds since the epoch to a time.
func msTime(ms float64) time.Time {
	sec := math.Floor(ms / 1000)
	ns := math.Round((ms - sec*1000) * 1e6)
	return time.Unix(int64(sec), int64(ns)).UTC()
}

// timeMs converts a time to milliseconds since the epoch.
func timeMs(t time.Time) float64 {
	return float64(t.Unix())*1000 + float64(t.Nanosecond())/1e6
}
