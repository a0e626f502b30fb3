package app

import (
	"net/http"

	"github.com/metinatakli/airline-reservation-system/api"
)

// requireAdmin guards the operations that declare the adminSession security
// scheme. Other operations pass through untouched.
func (app *Application) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Context().Value(api.AdminSessionScopes) == nil {
			next.ServeHTTP(w, r)
			return
		}

		admin := app.sessionManager.GetString(r.Context(), SessionKeyAdmin.String())
		if admin == "" {
			app.contextGetLogger(r).Warn("administrator operation attempted without admin session")
			app.unauthorizedAccessResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
