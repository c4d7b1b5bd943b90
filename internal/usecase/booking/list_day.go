package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ListDay builds the admin agenda: one column per staff member.
type ListDay struct {
	repo domain.Repository
	shop Shop
}

func NewListDay(repo domain.Repository, shop Shop) *ListDay {
	return &ListDay{repo: repo, shop: shop}
}

func (uc *ListDay) Execute(ctx context.Context, date string) ([]dto.StaffDayDTO, error) {
	day, err := uc.shop.openDay(date)
	if err != nil {
		return nil, err
	}

	staff, err := uc.repo.ListStaff(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StaffDayDTO, 0, len(staff))
	for _, s := range staff {
		bookings, err := uc.repo.ListBookings(ctx, s.ID, day)
		if err != nil {
			return nil, err
		}

		rows := make([]dto.BookingListDTO, 0, len(bookings))
		for _, b := range bookings {
			start := b.StartTime.In(uc.shop.loc())
			rows = append(rows, dto.BookingListDTO{
				ID:            b.ID,
				StartTime:     start,
				EndTime:       b.EndTime.In(uc.shop.loc()),
				Time:          start.Format(timezone.TimeLayout),
				DurationMin:   b.DurationMin(),
				Service:       b.Service,
				CustomerName:  b.CustomerName,
				CustomerPhone: b.CustomerPhone,
			})
		}

		out = append(out, dto.StaffDayDTO{
			StaffID:   s.ID,
			StaffName: s.Name,
			Bookings:  rows,
		})
	}

	return out, nil
}
