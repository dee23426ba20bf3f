package middleware

import (
	"context"
	"net/http"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
)

// TenantHeader заголовок с идентификатором арендатора. Аутентификация
// и проверка прав выполняются внешним слоем, сюда заголовок приходит
// уже проверенным.
const TenantHeader = "X-Tenant-ID"

type tenantCtxKey struct{}

// Tenant middleware извлекает идентификатор арендатора из заголовка
// и кладет его в контекст запроса. Запросы без заголовка отклоняются.
func Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.Header.Get(TenantHeader)
		if tenantID == "" {
			handlers.RespondForbidden(w, "отсутствует заголовок X-Tenant-ID")
			return
		}
		ctx := context.WithValue(r.Context(), tenantCtxKey{}, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TenantFromContext возвращает идентификатор арендатора из контекста
func TenantFromContext(ctx context.Context) string {
	tenantID, _ := ctx.Value(tenantCtxKey{}).(string)
	return tenantID
}
