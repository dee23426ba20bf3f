package list_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

// parseFilter собирает фильтр выборки из query параметров.
// Даты принимаются в формате YYYY-MM-DD, конец периода включает
// весь указанный день.
func parseFilter(tenantID string, query url.Values) (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{TenantID: tenantID}

	if param := query.Get("resource_id"); param != "" {
		id, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.ResourceID = &id
	}

	if param := query.Get("date_from"); param != "" {
		from, err := time.Parse(domain.DateFormat, param)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &from
	}

	if param := query.Get("date_to"); param != "" {
		to, err := time.Parse(domain.DateFormat, param)
		if err != nil {
			return filter, err
		}
		end := to.AddDate(0, 0, 1)
		filter.EndDate = &end
	}

	if param := query.Get("status"); param != "" {
		status := domain.BookingStatus(param)
		filter.Status = &status
	}

	return filter, nil
}
