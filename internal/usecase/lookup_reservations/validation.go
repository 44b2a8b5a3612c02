package lookup_reservations

import (
	"fmt"

	"github.com/m04kA/SMC-VisitService/internal/validation"
)

// Результаты для метрики reservation_lookups_total
const (
	resultFound   = "found"
	resultEmpty   = "empty"
	resultInvalid = "invalid"
	resultError   = "error"
)

// validateRequest валидирует телефон и PIN
func validateRequest(req *Request) error {
	if err := validation.LookupForm(req.GuestPhone, req.GuestPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
