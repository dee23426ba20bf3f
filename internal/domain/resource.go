package domain

import "time"

// ResourceKind тип бронируемого ресурса
type ResourceKind string

const (
	KindRoom    ResourceKind = "room"
	KindVehicle ResourceKind = "vehicle"
)

// IsValid проверяет, что тип ресурса известен системе
func (k ResourceKind) IsValid() bool {
	return k == KindRoom || k == KindVehicle
}

// ResourceStatus статус жизненного цикла ресурса.
// Статус всегда выводится из событий (бронирование, заезд, выезд, уборка,
// вывод из эксплуатации) и никогда не выставляется снаружи напрямую.
type ResourceStatus string

const (
	StatusAvailable  ResourceStatus = "available"
	StatusReserved   ResourceStatus = "reserved"
	StatusOccupied   ResourceStatus = "occupied"
	StatusCleaning   ResourceStatus = "cleaning"
	StatusOutOfOrder ResourceStatus = "out_of_order"
)

// HousekeepingStatus статус уборки ресурса
type HousekeepingStatus string

const (
	HousekeepingClean    HousekeepingStatus = "clean"
	HousekeepingCleaning HousekeepingStatus = "cleaning"
	HousekeepingDirty    HousekeepingStatus = "dirty"
)

// OutOfOrderRecord сведения о выводе ресурса из эксплуатации
type OutOfOrderRecord struct {
	Active bool
	Ticket *string // UUID тикета, присваивается при выводе из эксплуатации
	Reason *string
	ETA    *time.Time
}

// Resource бронируемый физический ресурс (номер или автомобиль).
// Ресурсы создаются при провижининге и никогда не удаляются,
// меняется только их статус.
type Resource struct {
	ID                 int64
	TenantID           string
	Kind               ResourceKind
	Name               string
	Status             ResourceStatus
	HousekeepingStatus HousekeepingStatus
	OutOfOrder         OutOfOrderRecord
	BaseRate           float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable возвращает true, если ресурс принимает новые бронирования
func (r *Resource) IsBookable() bool {
	return !r.OutOfOrder.Active
}

// DeriveStatus выводит статус ресурса из его наблюдаемого состояния.
// Используется после отмены бронирования, завершения уборки и возврата
// в эксплуатацию, когда таблица переходов сама по себе не определяет,
// куда вернуться.
//
// Приоритет: out_of_order > заехавший гость > незавершенная уборка >
// подтвержденные бронирования > свободен.
func DeriveStatus(outOfOrder bool, hk HousekeepingStatus, hasCheckedIn, hasConfirmed bool) ResourceStatus {
	switch {
	case outOfOrder:
		return StatusOutOfOrder
	case hasCheckedIn:
		return StatusOccupied
	case hk == HousekeepingCleaning:
		return StatusCleaning
	case hasConfirmed:
		return StatusReserved
	default:
		return StatusAvailable
	}
}
