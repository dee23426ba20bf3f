package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// Booking бронирование ресурса на полуоткрытый интервал [StartAt, EndAt).
// После перехода в checked_out бронирование неизменяемо,
// кроме аудиторных полей.
type Booking struct {
	ID         int64
	TenantID   string
	ResourceID int64
	StartAt    time.Time
	EndAt      time.Time
	Purpose    *string
	BookedBy   string
	Amount     float64
	Status     BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если бронирование занимает интервал
// (участвует в проверке пересечений)
func (b *Booking) IsActive() bool {
	return b.Status == BookingConfirmed || b.Status == BookingCheckedIn
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingConfirmed
}

// CanBeUpdated возвращает true, если интервал бронирования можно изменить
func (b *Booking) CanBeUpdated() bool {
	return b.Status == BookingConfirmed
}

// Overlaps проверяет пересечение с интервалом [start, end)
// по полуоткрытой семантике: стыковка end == start пересечением не считается
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartAt.Before(end) && start.Before(b.EndAt)
}

// Covers возвращает true, если момент t попадает в интервал бронирования
func (b *Booking) Covers(t time.Time) bool {
	return !t.Before(b.StartAt) && t.Before(b.EndAt)
}

// ActiveStatuses статусы бронирований, занимающих интервал.
// Используются при проверке пересечений и подсчете занятости.
var ActiveStatuses = []BookingStatus{
	BookingConfirmed,
	BookingCheckedIn,
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	TenantID   string     // Обязательный параметр
	ResourceID *int64     // Фильтр по ресурсу (опционально)
	StartDate  *time.Time // Начало периода по start_at (опционально)
	EndDate    *time.Time // Конец периода по start_at (опционально)
	Status     *BookingStatus
	OnlyActive bool // Только confirmed/checked_in
	Limit      uint64
}
