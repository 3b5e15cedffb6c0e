package messages

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	InvalidSortField = "invalid.sort.field"
	InvalidParam     = "invalid.param"
	InvalidBody      = "invalid.body"
	Unauthorized     = "unauthorized"
	Forbidden        = "forbidden"
	InternalError    = "internal.error"
	StorageDown      = "storage.unavailable"
)

//go:embed messages.yaml
var raw []byte

// catalog is read-only after init.
var catalog = mustParse(raw)

func mustParse(b []byte) map[string]string {
	m := make(map[string]string)
	if err := yaml.Unmarshal(b, &m); err != nil {
		panic(fmt.Sprintf("messages: invalid catalog: %v", err))
	}
	return m
}

// Get resolves code and formats it with args. Unknown codes are returned as is.
func Get(code string, args ...any) string {
	tmpl, ok := catalog[code]
	if !ok {
		return code
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

func Has(code string) bool {
	_, ok := catalog[code]
	return ok
}
