package middleware

import (
	"net/http"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/user"
	"github.com/hadir-hr/hadir-backend-go/internal/handler/http/response"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/jwt"
)

// RequireManager requires manager or owner role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := jwt.PrincipalFromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		if !p.IsManager() {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
