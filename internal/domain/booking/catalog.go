package booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type Service struct {
	Label       string `json:"label" yaml:"label"`
	DurationMin int    `json:"duration_min" yaml:"duration_min"`
}

// Display is the picker text, e.g. "Barba (15 min)".
func (s Service) Display() string {
	return fmt.Sprintf("%s (%d min)", s.Label, s.DurationMin)
}

// Catalog keeps services in declaration order.
type Catalog []Service

func (c Catalog) Lookup(label string) (Service, error) {
	label = strings.TrimSpace(label)
	for _, s := range c {
		if s.Label == label {
			return s, nil
		}
	}
	return Service{}, httperr.ErrBusiness("service_not_found")
}

func (c Catalog) Validate() error {
	if len(c) == 0 {
		return errors.New("catalog: no services configured")
	}
	seen := make(map[string]bool, len(c))
	for _, s := range c {
		if strings.TrimSpace(s.Label) == "" {
			return errors.New("catalog: empty service label")
		}
		if s.DurationMin <= 0 {
			return fmt.Errorf("catalog: service %q has non-positive duration", s.Label)
		}
		if seen[s.Label] {
			return fmt.Errorf("catalog: duplicate service %q", s.Label)
		}
		seen[s.Label] = true
	}
	return nil
}

func DefaultCatalog() Catalog {
	return Catalog{
		{Label: "Taglio Uomo", DurationMin: 30},
		{Label: "Barba", DurationMin: 15},
		{Label: "Taglio + Barba", DurationMin: 45},
	}
}

// StaffMember is the seeded roster entry.
type StaffMember struct {
	ID   uint   `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Roster []StaffMember

func (r Roster) Validate() error {
	if len(r) == 0 {
		return errors.New("roster: no staff configured")
	}
	ids := make(map[uint]bool, len(r))
	names := make(map[string]bool, len(r))
	for _, m := range r {
		if m.ID == 0 || strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("roster: invalid member %+v", m)
		}
		if ids[m.ID] || names[m.Name] {
			return fmt.Errorf("roster: duplicate member %+v", m)
		}
		ids[m.ID] = true
		names[m.Name] = true
	}
	return nil
}

func DefaultRoster() Roster {
	return Roster{
		{ID: 1, Name: "Salvatore"},
		{ID: 2, Name: "Raffaele"},
	}
}
