package reshape

import (
	"fmt"
	"strings"
)

// InvalidInputError reports an input table that does not satisfy the
// observation contract. It is returned before any other processing.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input table: %s", e.Reason)
}

// InvalidArgumentError reports an argument outside its allowed set, most
// notably an unsupported mapping name. The message names the received value.
type InvalidArgumentError struct {
	Name  string // argument name, e.g. "mapping"
	Value string // the offending value as received
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of %s", e.Name, e.Value, strings.Join(Mappings(), ", "))
}
