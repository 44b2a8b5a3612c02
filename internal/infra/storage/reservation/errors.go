package reservation

import "errors"

var (
	// ErrSlotAlreadyReserved возвращается, когда слот (дата, час) уже занят.
	// Источник истины - уникальный индекс reservations_visit_slot_key.
	ErrSlotAlreadyReserved = errors.New("reservation.repository: slot already reserved")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)

// StoreError ошибка, которую вернула сама БД (с текстом сообщения PostgreSQL)
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// StoreMessage возвращает текст ошибки БД
func (e *StoreError) StoreMessage() string {
	return e.Message
}
