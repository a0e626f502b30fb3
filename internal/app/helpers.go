package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/airline-reservation-system/internal/jsonutil"
)

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return jsonutil.ReadJSON(w, r, dst)
}

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	return jsonutil.WriteJSON(w, status, data, headers)
}

// validID answers 400 and returns false when a path identifier is not positive.
func (app *Application) validID(w http.ResponseWriter, r *http.Request, name string, id int) bool {
	if id < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("%s must be greater than zero", name))
		return false
	}

	return true
}
