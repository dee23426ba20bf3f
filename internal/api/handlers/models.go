package handlers

import (
	"time"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

// ResourceView каноническое HTTP представление ресурса
type ResourceView struct {
	ID                 int64           `json:"id"`
	Kind               string          `json:"kind"`
	Name               string          `json:"name"`
	Status             string          `json:"status"`
	HousekeepingStatus string          `json:"housekeepingStatus"`
	BaseRate           float64         `json:"baseRate"`
	OutOfOrder         *OutOfOrderView `json:"outOfOrder,omitempty"`
	CreatedAt          string          `json:"createdAt"`
	UpdatedAt          string          `json:"updatedAt"`
}

// OutOfOrderView сведения о выводе из эксплуатации
type OutOfOrderView struct {
	Ticket *string `json:"ticket,omitempty"`
	Reason *string `json:"reason,omitempty"`
	ETA    *string `json:"eta,omitempty"`
}

// BookingView каноническое HTTP представление бронирования
type BookingView struct {
	ID                 int64   `json:"id"`
	ResourceID         int64   `json:"resourceId"`
	StartAt            string  `json:"startAt"`
	EndAt              string  `json:"endAt"`
	Purpose            *string `json:"purpose,omitempty"`
	BookedBy           string  `json:"bookedBy"`
	Amount             float64 `json:"amount"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// TaskView каноническое HTTP представление задачи уборки
type TaskView struct {
	ID          int64   `json:"id"`
	ResourceID  int64   `json:"resourceId"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	CompletedAt *string `json:"completedAt,omitempty"`
}

// FromResource конвертирует доменный ресурс в HTTP представление
func FromResource(res *domain.Resource) *ResourceView {
	view := &ResourceView{
		ID:                 res.ID,
		Kind:               string(res.Kind),
		Name:               res.Name,
		Status:             string(res.Status),
		HousekeepingStatus: string(res.HousekeepingStatus),
		BaseRate:           res.BaseRate,
		CreatedAt:          res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          res.UpdatedAt.Format(time.RFC3339),
	}
	if res.OutOfOrder.Active {
		view.OutOfOrder = &OutOfOrderView{
			Ticket: res.OutOfOrder.Ticket,
			Reason: res.OutOfOrder.Reason,
			ETA:    formatTimePtr(res.OutOfOrder.ETA),
		}
	}
	return view
}

// FromResources конвертирует список ресурсов
func FromResources(list []*domain.Resource) []*ResourceView {
	out := make([]*ResourceView, 0, len(list))
	for _, res := range list {
		out = append(out, FromResource(res))
	}
	return out
}

// FromBooking конвертирует доменное бронирование в HTTP представление
func FromBooking(b *domain.Booking) *BookingView {
	return &BookingView{
		ID:                 b.ID,
		ResourceID:         b.ResourceID,
		StartAt:            b.StartAt.Format(time.RFC3339),
		EndAt:              b.EndAt.Format(time.RFC3339),
		Purpose:            b.Purpose,
		BookedBy:           b.BookedBy,
		Amount:             b.Amount,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromBookings конвертирует список бронирований
func FromBookings(list []*domain.Booking) []*BookingView {
	out := make([]*BookingView, 0, len(list))
	for _, b := range list {
		out = append(out, FromBooking(b))
	}
	return out
}

// FromTask конвертирует доменную задачу уборки в HTTP представление
func FromTask(t *domain.HousekeepingTask) *TaskView {
	return &TaskView{
		ID:          t.ID,
		ResourceID:  t.ResourceID,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		CompletedAt: formatTimePtr(t.CompletedAt),
	}
}

// FromTasks конвертирует список задач уборки
func FromTasks(list []*domain.HousekeepingTask) []*TaskView {
	out := make([]*TaskView, 0, len(list))
	for _, t := range list {
		out = append(out, FromTask(t))
	}
	return out
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
