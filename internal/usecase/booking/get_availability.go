package booking

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type AvailabilityInput struct {
	Date    string
	Service string
	StaffID uint // 0 = any staff member
}

type Availability struct {
	Date        string        `json:"date"`
	Service     string        `json:"service"`
	DurationMin int           `json:"duration_min"`
	Slots       []dto.SlotDTO `json:"slots"`
}

type GetAvailability struct {
	repo        domain.Repository
	shop        Shop
	strictReads bool
	log         logrus.FieldLogger
}

// NewGetAvailability builds the slot lookup. With strictReads off, a failed
// bookings read for a staff member is logged and treated as an empty day.
func NewGetAvailability(
	repo domain.Repository,
	shop Shop,
	strictReads bool,
	log logrus.FieldLogger,
) *GetAvailability {
	return &GetAvailability{
		repo:        repo,
		shop:        shop,
		strictReads: strictReads,
		log:         log,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*Availability, error) {

	day, err := uc.shop.openDay(in.Date)
	if err != nil {
		return nil, err
	}
	if day.Before(uc.shop.Today()) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	service, err := uc.shop.Catalog.Lookup(in.Service)
	if err != nil {
		return nil, err
	}

	staff, err := uc.staffFor(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}

	now := uc.shop.now()
	duration := time.Duration(service.DurationMin) * time.Minute
	slots := make([]dto.SlotDTO, 0)

	for _, s := range staff {
		existing, err := uc.repo.ListBookings(ctx, s.ID, day)
		if err != nil {
			if uc.strictReads {
				return nil, err
			}
			uc.log.WithError(err).WithFields(logrus.Fields{
				"staff_id": s.ID,
				"date":     timezone.DayKey(day),
			}).Warn("bookings read failed, treating day as free")
			existing = nil
		}

		for _, start := range uc.shop.Schedule.AvailableSlots(day, service.DurationMin, domain.Snapshot(existing)) {
			// already started today
			if start.Before(now) {
				continue
			}
			slots = append(slots, dto.SlotDTO{
				Start:     start,
				End:       start.Add(duration),
				Time:      start.Format(timezone.TimeLayout),
				StaffID:   s.ID,
				StaffName: s.Name,
				Label:     slotLabel(start, s.Name, in.StaffID == 0),
			})
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if !slots[i].Start.Equal(slots[j].Start) {
			return slots[i].Start.Before(slots[j].Start)
		}
		return slots[i].StaffName < slots[j].StaffName
	})

	return &Availability{
		Date:        timezone.DayKey(day),
		Service:     service.Label,
		DurationMin: service.DurationMin,
		Slots:       slots,
	}, nil
}

func (uc *GetAvailability) staffFor(ctx context.Context, staffID uint) ([]models.Staff, error) {
	if staffID != 0 {
		s, err := uc.repo.GetStaff(ctx, staffID)
		if err != nil {
			return nil, err
		}
		return []models.Staff{*s}, nil
	}
	return uc.repo.ListStaff(ctx)
}

func slotLabel(start time.Time, staffName string, anyStaff bool) string {
	label := start.Format(timezone.TimeLayout)
	if anyStaff {
		label += " con " + staffName
	}
	return label
}
