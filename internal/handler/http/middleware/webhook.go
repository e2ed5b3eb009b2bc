package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/user"
	"github.com/hadir-hr/hadir-backend-go/internal/handler/http/response"
)

const WebhookSecretHeader = "X-Webhook-Secret"

// WebhookSecret authenticates bot and serverless callers by a shared secret.
func WebhookSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(WebhookSecretHeader)
			if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				response.HandleError(w, user.ErrInvalidWebhookSecret)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
