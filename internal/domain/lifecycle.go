package domain

import "fmt"

// LifecycleEvent событие, двигающее жизненный цикл ресурса
type LifecycleEvent string

const (
	EventBookingConfirmed LifecycleEvent = "booking_confirmed"
	EventCheckIn          LifecycleEvent = "check_in"
	EventCheckOut         LifecycleEvent = "check_out"
	EventTaskCompleted    LifecycleEvent = "task_completed"
	EventMarkOutOfOrder   LifecycleEvent = "mark_out_of_order"
	EventBackInService    LifecycleEvent = "back_in_service"
)

// ErrIllegalTransition возвращается при недопустимом переходе жизненного цикла.
// Состояние ресурса при этом не меняется.
var ErrIllegalTransition = fmt.Errorf("domain: illegal lifecycle transition")

// transitions таблица допустимых переходов: состояние -> событие -> новое состояние.
// EventMarkOutOfOrder разрешен из любого состояния и обрабатывается отдельно.
var transitions = map[ResourceStatus]map[LifecycleEvent]ResourceStatus{
	StatusAvailable: {
		EventBookingConfirmed: StatusReserved,
	},
	StatusReserved: {
		EventCheckIn: StatusOccupied,
	},
	StatusOccupied: {
		EventCheckOut: StatusCleaning,
	},
	StatusCleaning: {
		EventTaskCompleted: StatusAvailable,
	},
	StatusOutOfOrder: {
		EventBackInService: StatusAvailable,
	},
}

// NextStatus возвращает состояние после применения события.
// Недопустимый переход возвращает ErrIllegalTransition, состояние не меняется.
func NextStatus(from ResourceStatus, event LifecycleEvent) (ResourceStatus, error) {
	// Вывод из эксплуатации возможен из любого состояния
	if event == EventMarkOutOfOrder {
		return StatusOutOfOrder, nil
	}

	byEvent, ok := transitions[from]
	if !ok {
		return from, fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, from)
	}

	to, ok := byEvent[event]
	if !ok {
		return from, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, event)
	}

	return to, nil
}

// CanApply проверяет допустимость события без применения
func CanApply(from ResourceStatus, event LifecycleEvent) bool {
	_, err := NextStatus(from, event)
	return err == nil
}

// ApplyEvent применяет событие к ресурсу.
// При недопустимом переходе ресурс остается нетронутым.
func ApplyEvent(r *Resource, event LifecycleEvent) error {
	next, err := NextStatus(r.Status, event)
	if err != nil {
		return err
	}
	r.Status = next
	return nil
}
