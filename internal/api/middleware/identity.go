package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/m04kA/arena-booking/internal/api/handlers"
)

const (
	HeaderUserID     = "X-User-ID"
	HeaderAdminToken = "X-Admin-Token"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	adminKey
)

// Identify разбирает X-User-ID и X-Admin-Token и кладёт результат в контекст.
// Некорректный X-User-ID отклоняется с 400; пустой adminToken отключает админ-доступ
func Identify(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if raw := r.Header.Get(HeaderUserID); raw != "" {
				userID, err := strconv.ParseInt(raw, 10, 64)
				if err != nil || userID <= 0 {
					handlers.RespondBadRequest(w, "некорректный заголовок X-User-ID")
					return
				}
				ctx = context.WithValue(ctx, userIDKey, userID)
			}

			if token := r.Header.Get(HeaderAdminToken); adminToken != "" && token != "" &&
				subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) == 1 {
				ctx = context.WithValue(ctx, adminKey, true)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Auth требует X-User-ID
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserIDFromContext(r.Context()); !ok {
			handlers.RespondUnauthorized(w, "требуется заголовок X-User-ID")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminOnly требует корректный X-Admin-Token
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			handlers.RespondForbidden(w, "доступ только для администратора")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext id пользователя из X-User-ID
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// UserIDPtr id пользователя или nil
func UserIDPtr(ctx context.Context) *int64 {
	if id, ok := UserIDFromContext(ctx); ok {
		return &id
	}
	return nil
}

// IsAdmin запрос выполнен с корректным админским токеном
func IsAdmin(ctx context.Context) bool {
	admin, _ := ctx.Value(adminKey).(bool)
	return admin
}
