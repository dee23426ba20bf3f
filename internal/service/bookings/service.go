package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	bookingRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/booking"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo         BookingRepository
	upcomingWindowHours int
	logger              Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// upcomingWindowHours — окно по умолчанию для выборки ближайших
// бронирований.
func NewService(bookingRepo BookingRepository, upcomingWindowHours int, logger Logger) *Service {
	if upcomingWindowHours <= 0 {
		upcomingWindowHours = domain.DefaultUpcomingWindowHours
	}
	return &Service{
		bookingRepo:         bookingRepo,
		upcomingWindowHours: upcomingWindowHours,
		logger:              logger,
	}
}

// GetByID возвращает бронирование по идентификатору
func (s *Service) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Bookings.GetByID: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return b, nil
}

// ListWithFilter возвращает бронирования арендатора по фильтру
func (s *Service) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if filter.TenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: dateTo is before dateFrom", ErrInvalidInput)
	}

	list, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Bookings.ListWithFilter: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	return list, nil
}

// Upcoming возвращает бронирования, начинающиеся или заканчивающиеся
// в ближайшие hours часов. Нулевое значение означает окно по
// умолчанию, окно больше допустимого обрезается.
func (s *Service) Upcoming(ctx context.Context, tenantID string, hours int) ([]*domain.Booking, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}
	if hours < 0 {
		return nil, fmt.Errorf("%w: hours must be non-negative", ErrInvalidInput)
	}

	if hours == 0 {
		hours = s.upcomingWindowHours
	}
	if hours > domain.MaxUpcomingWindowHours {
		hours = domain.MaxUpcomingWindowHours
	}

	list, err := s.bookingRepo.ListUpcoming(ctx, tenantID, time.Now(), time.Duration(hours)*time.Hour)
	if err != nil {
		s.logger.Error("Bookings.Upcoming: failed to list upcoming bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list upcoming bookings: %v", ErrInternal, err)
	}

	return list, nil
}
