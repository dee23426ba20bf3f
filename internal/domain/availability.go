package domain

import "time"

// AvailabilityReason машиночитаемая причина отказа в бронировании
type AvailabilityReason string

const (
	ReasonInvalidInterval AvailabilityReason = "invalid_interval"
	ReasonOutOfOrder      AvailabilityReason = "out_of_order"
	ReasonOverlap         AvailabilityReason = "overlap"
)

// AvailabilityResult результат проверки доступности интервала
type AvailabilityResult struct {
	Available bool
	Reason    AvailabilityReason
	Conflict  *Booking // Первое найденное пересечение (при Reason == overlap)
}

// CheckAvailability чистая проверка: можно ли забронировать ресурс на
// [start, end). Не имеет побочных эффектов и детерминирована относительно
// переданного снимка бронирований, её безопасно вызывать повторно.
//
// excludeBookingID исключает бронирование из проверки пересечений -
// используется при изменении существующего бронирования.
//
// Порядок проверок: интервал -> вывод из эксплуатации -> пересечения.
// Стыковка впритык (end одного == start другого) пересечением не считается.
func CheckAvailability(
	res *Resource,
	active []*Booking,
	start, end time.Time,
	minDuration time.Duration,
	excludeBookingID *int64,
) AvailabilityResult {
	if !end.After(start) || end.Sub(start) < minDuration {
		return AvailabilityResult{Available: false, Reason: ReasonInvalidInterval}
	}

	if res.OutOfOrder.Active {
		return AvailabilityResult{Available: false, Reason: ReasonOutOfOrder}
	}

	for _, b := range active {
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}
		if !b.IsActive() {
			continue
		}
		if b.Overlaps(start, end) {
			return AvailabilityResult{Available: false, Reason: ReasonOverlap, Conflict: b}
		}
	}

	return AvailabilityResult{Available: true}
}
