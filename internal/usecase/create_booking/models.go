package create_booking

import (
	"time"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	TenantID   string
	ResourceID int64
	StartAt    time.Time
	EndAt      time.Time
	Purpose    *string
	BookedBy   string   // Пустое значение заменяется дефолтным диспетчером
	Amount     *float64 // nil = посчитать из base_rate ресурса
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking        *domain.Booking
	ResourceStatus domain.ResourceStatus
}
