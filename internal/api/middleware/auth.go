package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userTierKey contextKey = "userTier"

	// HeaderUserID идентификатор пользователя, проставляется шлюзом
	HeaderUserID = "X-User-ID"
	// HeaderUserTier тариф пользователя; отсутствующий или неизвестный
	// тариф трактуется как guest
	HeaderUserTier = "X-User-Tier"

	msgMissingUserID = "отсутствует ID пользователя"
	msgAdminOnly     = "операция доступна только администратору"
)

// Auth требует заголовок X-User-ID и кладёт идентификатор и тариф
// пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		tier := domain.NormalizeTier(domain.Tier(r.Header.Get(HeaderUserTier)))

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userTierKey, tier)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly пропускает только пользователей с тарифом admin.
// Применяется после Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tier, ok := GetUserTier(r.Context())
		if !ok || tier != domain.TierAdmin {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// GetUserTier извлекает тариф пользователя из контекста
func GetUserTier(ctx context.Context) (domain.Tier, bool) {
	tier, ok := ctx.Value(userTierKey).(domain.Tier)
	return tier, ok
}
