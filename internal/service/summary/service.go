package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

// KindCounts счетчики занятости по одному типу ресурсов
type KindCounts struct {
	Total      int
	Occupied   int
	OutOfOrder int
	Vacant     int
}

// OccupancySummary сводка занятости по реестру ресурсов
type OccupancySummary struct {
	Total      int
	Occupied   int
	OutOfOrder int
	Vacant     int
	ByKind     map[domain.ResourceKind]KindCounts
}

// RevenueSummary сводка выручки за период. Считается по сумме
// неотмененных бронирований, начало которых попадает в период,
// никогда не хранится.
type RevenueSummary struct {
	Period   string
	From     time.Time
	To       time.Time
	Total    float64
	Bookings int
}

// Service сервис сводок занятости и выручки
type Service struct {
	resourceRepo ResourceRepository
	bookingRepo  BookingRepository
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса сводок.
// location — часовой пояс, в котором усекаются границы периодов выручки.
func NewService(
	resourceRepo ResourceRepository,
	bookingRepo BookingRepository,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		resourceRepo: resourceRepo,
		bookingRepo:  bookingRepo,
		location:     location,
		logger:       logger,
	}
}

// Occupancy строит сводку занятости одним проходом по реестру
func (s *Service) Occupancy(ctx context.Context, tenantID string) (*OccupancySummary, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	list, err := s.resourceRepo.List(ctx, tenantID, nil)
	if err != nil {
		s.logger.Error("Summary.Occupancy: failed to list resources: %v", err)
		return nil, fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
	}

	out := &OccupancySummary{
		ByKind: make(map[domain.ResourceKind]KindCounts),
	}

	for _, res := range list {
		out.Total++
		counts := out.ByKind[res.Kind]
		counts.Total++

		switch {
		case res.OutOfOrder.Active:
			out.OutOfOrder++
			counts.OutOfOrder++
		case res.Status == domain.StatusOccupied:
			out.Occupied++
			counts.Occupied++
		}

		out.ByKind[res.Kind] = counts
	}

	out.Vacant = out.Total - out.Occupied - out.OutOfOrder
	for kind, counts := range out.ByKind {
		counts.Vacant = counts.Total - counts.Occupied - counts.OutOfOrder
		out.ByKind[kind] = counts
	}

	return out, nil
}

// Revenue строит сводку выручки за текущий период (day/week/month/year).
// Границы периода усекаются в настроенном часовом поясе.
func (s *Service) Revenue(ctx context.Context, tenantID, period string) (*RevenueSummary, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}
	if !domain.RollupPeriods[period] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}

	from, to := PeriodBounds(time.Now(), period, s.location)

	total, count, err := s.bookingRepo.SumAmountForPeriod(ctx, tenantID, from, to)
	if err != nil {
		s.logger.Error("Summary.Revenue: failed to sum amounts: %v", err)
		return nil, fmt.Errorf("%w: failed to sum amounts: %v", ErrInternal, err)
	}

	return &RevenueSummary{
		Period:   period,
		From:     from,
		To:       to,
		Total:    total,
		Bookings: count,
	}, nil
}

// PeriodBounds возвращает полуоткрытые границы [from, to) периода,
// в который попадает момент now в часовом поясе loc. Неделя начинается
// с понедельника.
func PeriodBounds(now time.Time, period string, loc *time.Location) (time.Time, time.Time) {
	t := now.In(loc)
	year, month, day := t.Date()

	switch period {
	case "week":
		// time.Weekday нумерует с воскресенья
		offset := (int(t.Weekday()) + 6) % 7
		from := time.Date(year, month, day, 0, 0, 0, 0, loc).AddDate(0, 0, -offset)
		return from, from.AddDate(0, 0, 7)
	case "month":
		from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 1, 0)
	case "year":
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(1, 0, 0)
	default: // day
		from := time.Date(year, month, day, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 0, 1)
	}
}
