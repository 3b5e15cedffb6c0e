package response

import (
	"net/http"

	"github.com/go-chi/render"
)

const (
	StatusOk    = "OK"
	StatusError = "Error"
)

type Response struct {
	Status string   `json:"status"`
	Errors []string `json:"errors,omitempty"`
	Token  string   `json:"token,omitempty"`
}

func OK() Response {
	return Response{
		Status: StatusOk,
	}
}

func Err(msgs ...string) Response {
	return Response{
		Status: StatusError,
		Errors: msgs,
	}
}

// Error writes an error envelope with the given status code.
func Error(w http.ResponseWriter, r *http.Request, code int, msgs ...string) {
	render.Status(r, code)
	render.JSON(w, r, Err(msgs...))
}
