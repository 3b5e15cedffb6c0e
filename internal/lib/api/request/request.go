package request

import (
	"net/http"
	"strconv"
)

type Credentials struct {
	UserName string `json:"user_name,omitempty"`
	Password string `json:"password,omitempty"`
}

// ParamError reports a query parameter that could not be parsed.
type ParamError struct {
	Name  string
	Value string
	Err   error
}

func (e *ParamError) Error() string {
	return "invalid value " + strconv.Quote(e.Value) + " for parameter " + e.Name + ": " + e.Err.Error()
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// OptionalInt returns nil when the query parameter is absent or empty.
func OptionalInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &ParamError{Name: name, Value: raw, Err: err}
	}

	return &v, nil
}

func OptionalBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, &ParamError{Name: name, Value: raw, Err: err}
	}

	return &v, nil
}

func OptionalString(r *http.Request, name string) *string {
	if !r.URL.Query().Has(name) {
		return nil
	}

	v := r.URL.Query().Get(name)
	return &v
}
