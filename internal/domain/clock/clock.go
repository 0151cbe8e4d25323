package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidDate      = errors.New("invalid date")
)

// TimeOfDay son segundos desde la medianoche de reloj de pared (0..86399).
type TimeOfDay int

func FromSeconds(s int) TimeOfDay {
	s %= secondsPerDay
	if s < 0 {
		s += secondsPerDay
	}
	return TimeOfDay(s)
}

// Of devuelve la hora del día de t en la zona loc.
func Of(t time.Time, loc *time.Location) TimeOfDay {
	lt := t.In(Location(loc))
	return TimeOfDay(lt.Hour()*3600 + lt.Minute()*60 + lt.Second())
}

func (t TimeOfDay) Hour() int   { return int(t) / 3600 }
func (t TimeOfDay) Minute() int { return (int(t) / 60) % 60 }
func (t TimeOfDay) Second() int { return int(t) % 60 }

func (t TimeOfDay) Seconds() int { return int(t) }

// String formatea como HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// ParseTimeOfDay acepta "HH:MM" o "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second()), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
}

// FormatDuration formatea segundos como HH:MM:SS (las horas pueden pasar de 24).
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// Location devuelve loc, o time.Local si es nil.
func Location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

// LoadLocation resuelve un nombre IANA. Vacío o "Local" => time.Local.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// DayBounds devuelve [inicio, fin) del día calendario que contiene day en loc.
func DayBounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	d := day.In(Location(loc))
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	return start, start.AddDate(0, 0, 1)
}

// SameDay indica si t cae dentro del día calendario de day en loc.
func SameDay(t, day time.Time, loc *time.Location) bool {
	start, end := DayBounds(day, loc)
	return !t.Before(start) && t.Before(end)
}

// ParseDate interpreta "YYYY-MM-DD" como medianoche en loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), Location(loc))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}
