package booking

import (
	"context"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type SeedStaff struct {
	repo   domain.Repository
	roster domain.Roster
	log    logrus.FieldLogger
}

func NewSeedStaff(repo domain.Repository, roster domain.Roster, log logrus.FieldLogger) *SeedStaff {
	return &SeedStaff{repo: repo, roster: roster, log: log}
}

// Execute inserts the configured roster into an empty staff table.
func (uc *SeedStaff) Execute(ctx context.Context) error {
	n, err := uc.repo.EnsureStaffSeeded(ctx, uc.roster)
	if err != nil {
		return err
	}
	if n > 0 {
		uc.log.WithField("inserted", n).Info("staff roster seeded")
	}
	return nil
}
