package middleware

import (
	"context"
	"errors"
	"net/http"

	"Alternify/internal/auth"
)

// CookieName имя cookie с токеном сессии.
const CookieName = "token"

type ctxKey int

const emailKey ctxKey = iota

// SetLoginCookie выпускает токен для email и кладёт его в cookie.
// production: Secure + SameSite=None, иначе SameSite=Strict. MaxAge не задаётся.
func SetLoginCookie(w http.ResponseWriter, tokens *auth.TokenService, email string, production bool) error {
	token, err := tokens.Issue(email)
	if err != nil {
		return err
	}
	http.SetCookie(w, sessionCookie(token, production))
	return nil
}

// ClearLoginCookie удаляет cookie сессии на клиенте. Сервер отзывы не хранит.
func ClearLoginCookie(w http.ResponseWriter, production bool) {
	c := sessionCookie("", production)
	c.MaxAge = -1
	http.SetCookie(w, c)
}

func sessionCookie(value string, production bool) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	if production {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}

// WithAuth мягкая проверка: при валидном токене кладёт email в контекст,
// без токена или с невалидным токеном пропускает запрос анонимно.
func WithAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if email, err := emailFromRequest(r, tokens); err == nil {
				r = r.WithContext(WithEmail(r.Context(), email))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth закрывает маршрут: без токена или с невалидным/просроченным
// токеном отвечает 401 и не вызывает next. Ролей нет, любой валидный токен
// открывает любой защищённый маршрут.
func RequireAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetEmailFromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}
			email, err := emailFromRequest(r, tokens)
			if err != nil {
				if log != nil && !errors.Is(err, http.ErrNoCookie) {
					log.Infow("rejected session token", "uri", r.RequestURI, "error", err)
				}
				writeUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithEmail(r.Context(), email)))
		})
	}
}

func emailFromRequest(r *http.Request, tokens *auth.TokenService) (string, error) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", err
	}
	if c.Value == "" {
		return "", http.ErrNoCookie
	}
	return tokens.Verify(c.Value)
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}

// WithEmail кладёт подтверждённый email в контекст.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// GetEmailFromContext достаёт email, положенный WithAuth/RequireAuth.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok && email != ""
}
