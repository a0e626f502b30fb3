package app

import (
	"crypto/subtle"
	"net/http"

	"github.com/metinatakli/airline-reservation-system/api"
	"golang.org/x/crypto/bcrypt"
)

func (app *Application) CreateAdminSession(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.AdminLoginRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		logger.Warn("admin login validation failed")
		app.invalidCredentialsResponse(w, r)
		return
	}

	if !app.checkAdminCredentials(input.Username, input.Password) {
		logger.Warn("admin login failed", "username", input.Username)
		app.invalidCredentialsResponse(w, r)
		return
	}

	// Renew the token on privilege change to prevent session fixation.
	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyAdmin.String(), input.Username)

	logger.Info("admin session created", "username", input.Username)

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) DeleteAdminSession(w http.ResponseWriter, r *http.Request) {
	admin := app.sessionManager.GetString(r.Context(), SessionKeyAdmin.String())
	if admin == "" {
		app.notFoundResponse(w, r)
		return
	}

	err := app.sessionManager.Destroy(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) checkAdminCredentials(username, password string) bool {
	cfg := app.config.Admin
	if cfg.PasswordHash == "" {
		return false
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.Username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(password))

	return usernameMatch && passwordErr == nil
}
