// internal/nodeid/id.go
package nodeid

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies a single node in the hierarchy.
type ID int

// String serializes the ID into its canonical decimal form.
func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// Parse creates an ID from its canonical string representation. Surrounding
// whitespace is ignored; anything other than a base-10 integer is rejected.
func Parse(raw string) (ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("identifier cannot be empty")
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid identifier %q: must be an integer", raw)
	}
	return ID(v), nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// tests and static tables.
func MustParse(raw string) ID {
	id, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return id
}
