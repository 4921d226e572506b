package temporal

import "fmt"

// InvalidDateError is returned when a value cannot be coerced into a Date.
type InvalidDateError struct {
	Value any
}

// Error implements the error interface.
func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %s", describe(e.Value))
}

// InvalidTimeError is returned when a value cannot be coerced into a Time.
type InvalidTimeError struct {
	Value any
}

// Error implements the error interface.
func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time %s", describe(e.Value))
}

func describe(value any) string {
	if s, ok := value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", value)
}
