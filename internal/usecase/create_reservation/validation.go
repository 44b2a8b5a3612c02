package create_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-VisitService/internal/validation"
)

// Результаты для метрики reservations_created_total
const (
	resultCreated  = "created"
	resultConflict = "conflict"
	resultInvalid  = "invalid"
	resultError    = "error"
)

// validateSelection проверяет, что выбранный слот передан.
// Диапазон часа и существование категории не проверяются: слот приходит из расписания.
func validateSelection(req *Request) error {
	if req.CategoryID == 0 || req.VisitDate.IsZero() || req.VisitTime == 0 {
		return ErrSelectionRequired
	}
	return nil
}

// validateRequest валидирует поля гостя, собирая ошибки по всем полям
func validateRequest(req *Request) error {
	if err := validation.ReservationForm(req.GuestName, req.GuestPhone, req.GuestPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
