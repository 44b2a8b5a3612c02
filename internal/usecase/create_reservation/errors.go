package create_reservation

import "errors"

var (
	// ErrSelectionRequired возвращается, когда не передан выбранный слот (категория, дата, час)
	ErrSelectionRequired = errors.New("create_reservation: slot selection is required")

	// ErrInvalidInput возвращается при некорректных данных гостя
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrSlotAlreadyReserved возвращается, когда слот уже занят другим бронированием
	ErrSlotAlreadyReserved = errors.New("create_reservation: slot already reserved")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

const (
	// MsgSlotAlreadyReserved сообщение пользователю при занятом слоте
	MsgSlotAlreadyReserved = "이미 예약된 시간대입니다. 다른 시간을 선택해주세요."

	// MsgUnknownFailure сообщение, когда БД не вернула текста ошибки
	MsgUnknownFailure = "알 수 없는 에러가 발생했습니다."
)

// storeMessager реализуется ошибками хранилища, несущими текст ошибки БД
type storeMessager interface {
	StoreMessage() string
}

// FailureMessage возвращает текст для пользователя при ErrInternal:
// сообщение БД, если оно есть, иначе общий текст.
func FailureMessage(err error) string {
	var sm storeMessager
	if errors.As(err, &sm) && sm.StoreMessage() != "" {
		return sm.StoreMessage()
	}
	return MsgUnknownFailure
}
