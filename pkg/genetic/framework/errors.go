package framework

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ErrUninitialized is returned when a result is requested before any
// generation has been ranked.
var ErrUninitialized = errors.New("no generation has been ranked yet")

// ConfigurationError reports every invalid setting found while building a
// simulator.
type ConfigurationError struct {
	Errors field.ErrorList
}

// NewConfigurationError returns nil when errs is empty.
func NewConfigurationError(errs field.ErrorList) error {
	if len(errs) == 0 {
		return nil
	}
	return &ConfigurationError{Errors: errs}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %v", e.Errors.ToAggregate())
}

// SelectionError reports that a selector could not choose parents from a
// generation. It is never retried.
type SelectionError struct {
	Selector string
	Reason   string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s selection failed: %s", e.Selector, e.Reason)
}
