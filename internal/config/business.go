package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

// Business is the shop configuration: roster, services and opening hours.
type Business struct {
	Roster   booking.Roster
	Catalog  booking.Catalog
	Schedule booking.Schedule
}

func DefaultBusiness() Business {
	return Business{
		Roster:   booking.DefaultRoster(),
		Catalog:  booking.DefaultCatalog(),
		Schedule: booking.DefaultSchedule(),
	}
}

func (b Business) Validate() error {
	if err := b.Roster.Validate(); err != nil {
		return err
	}
	if err := b.Catalog.Validate(); err != nil {
		return err
	}
	return b.Schedule.Validate()
}

type businessFile struct {
	Staff    []booking.StaffMember `yaml:"staff"`
	Services []booking.Service     `yaml:"services"`
	Opening  struct {
		Intervals []struct {
			Open  string `yaml:"open"`
			Close string `yaml:"close"`
		} `yaml:"intervals"`
		CadenceMin     int      `yaml:"cadence_min"`
		ClosedWeekdays []string `yaml:"closed_weekdays"`
	} `yaml:"opening"`
}

// LoadBusiness reads a YAML schedule file. Sections left out keep their defaults.
func LoadBusiness(path string) (Business, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Business{}, fmt.Errorf("failed to read schedule file: %w", err)
	}
	return ParseBusiness(data)
}

func ParseBusiness(data []byte) (Business, error) {
	var f businessFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Business{}, fmt.Errorf("failed to parse schedule file: %w", err)
	}

	b := DefaultBusiness()

	if len(f.Staff) > 0 {
		b.Roster = f.Staff
	}
	if len(f.Services) > 0 {
		b.Catalog = f.Services
	}

	if len(f.Opening.Intervals) > 0 {
		b.Schedule.Intervals = nil
		for _, iv := range f.Opening.Intervals {
			open, err := booking.ParseTimeOfDay(iv.Open)
			if err != nil {
				return Business{}, err
			}
			closeAt, err := booking.ParseTimeOfDay(iv.Close)
			if err != nil {
				return Business{}, err
			}
			b.Schedule.Intervals = append(b.Schedule.Intervals, booking.OpeningInterval{Open: open, Close: closeAt})
		}
	}

	if f.Opening.CadenceMin != 0 {
		b.Schedule.Cadence = time.Duration(f.Opening.CadenceMin) * time.Minute
	}

	if f.Opening.ClosedWeekdays != nil {
		b.Schedule.ClosedWeekdays = nil
		for _, name := range f.Opening.ClosedWeekdays {
			wd, err := parseWeekday(name)
			if err != nil {
				return Business{}, err
			}
			b.Schedule.ClosedWeekdays = append(b.Schedule.ClosedWeekdays, wd)
		}
	}

	return b, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		full := strings.ToLower(wd.String())
		if n == full || n == full[:3] {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}
