package middleware

import (
	"net/http"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/user"
	"github.com/hadir-hr/hadir-backend-go/internal/handler/http/response"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/jwt"
)

// RequireCompany rejects tokens that are not bound to a company.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := jwt.PrincipalFromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrInvalidToken)
			return
		}

		if p.CompanyID == "" {
			response.HandleError(w, user.ErrCompanyIDRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
