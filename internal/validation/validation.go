package validation

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-VisitService/internal/domain"
)

// Имена полей форм (совпадают с JSON полями API)
const (
	FieldGuestName     = "guestName"
	FieldGuestPhone    = "guestPhone"
	FieldGuestPassword = "guestPassword"
)

// Сообщения для пользователя
const (
	MsgNameTooShort         = "이름은 2글자 이상이어야 합니다."
	MsgInvalidPhone         = "올바른 휴대폰 번호 형식이 아닙니다. (예: 01012345678)"
	MsgInvalidPhoneLookup   = "올바른 휴대폰 번호 형식이 아닙니다."
	MsgPasswordLength       = "비밀번호는 4자리 숫자여야 합니다."
	MsgPasswordDigitsOnly   = "숫자만 입력 가능합니다."
	MsgPasswordLengthLookup = "비밀번호는 4자리 숫자입니다."
)

var (
	// ErrValidation базовая ошибка валидации формы
	ErrValidation = errors.New("validation: invalid form data")

	// 010 и еще 8 цифр
	phonePattern = regexp.MustCompile(fmt.Sprintf(`^%s\d{%d}$`,
		domain.GuestPhonePrefix, domain.GuestPhoneLength-len(domain.GuestPhonePrefix)))
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// Check результат проверки одного поля
type Check struct {
	Valid   bool
	Message string
}

func pass() Check {
	return Check{Valid: true}
}

func fail(message string) Check {
	return Check{Valid: false, Message: message}
}

// GuestName проверяет имя гостя: не короче двух символов
func GuestName(value string) Check {
	if utf8.RuneCountInString(value) < domain.MinGuestNameLength {
		return fail(MsgNameTooShort)
	}
	return pass()
}

// GuestPhone проверяет номер телефона: "010" и еще 8 цифр
func GuestPhone(value string) Check {
	if !phonePattern.MatchString(value) {
		return fail(MsgInvalidPhone)
	}
	return pass()
}

// GuestPassword проверяет PIN при бронировании: ровно 4 символа, только цифры.
// Сначала проверяется длина, затем состав.
func GuestPassword(value string) Check {
	if utf8.RuneCountInString(value) != domain.GuestPasswordLength {
		return fail(MsgPasswordLength)
	}
	if !digitsPattern.MatchString(value) {
		return fail(MsgPasswordDigitsOnly)
	}
	return pass()
}

// LookupPhone проверяет номер телефона в форме поиска
func LookupPhone(value string) Check {
	if !phonePattern.MatchString(value) {
		return fail(MsgInvalidPhoneLookup)
	}
	return pass()
}

// LookupPassword проверяет PIN в форме поиска
func LookupPassword(value string) Check {
	if utf8.RuneCountInString(value) != domain.GuestPasswordLength || !digitsPattern.MatchString(value) {
		return fail(MsgPasswordLengthLookup)
	}
	return pass()
}

// Errors ошибки формы: поле -> сообщение
type Errors map[string]string

// Error реализует интерфейс error
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e Errors) Unwrap() error {
	return ErrValidation
}

// Form собирает результаты проверок полей одной формы
type Form struct {
	errs Errors
}

// Field добавляет результат проверки поля
func (f *Form) Field(name string, check Check) *Form {
	if check.Valid {
		return f
	}
	if f.errs == nil {
		f.errs = make(Errors)
	}
	if _, exists := f.errs[name]; !exists {
		f.errs[name] = check.Message
	}
	return f
}

// Err возвращает nil, если все поля валидны, иначе Errors
func (f *Form) Err() error {
	if len(f.errs) == 0 {
		return nil
	}
	return f.errs
}

// ReservationForm проверяет поля гостя при создании бронирования
func ReservationForm(name, phone, password string) error {
	form := &Form{}
	return form.
		Field(FieldGuestName, GuestName(name)).
		Field(FieldGuestPhone, GuestPhone(phone)).
		Field(FieldGuestPassword, GuestPassword(password)).
		Err()
}

// LookupForm проверяет поля формы поиска бронирований
func LookupForm(phone, password string) error {
	form := &Form{}
	return form.
		Field(FieldGuestPhone, LookupPhone(phone)).
		Field(FieldGuestPassword, LookupPassword(password)).
		Err()
}

// FieldErrors извлекает ошибки полей из err, если это ошибка валидации
func FieldErrors(err error) (Errors, bool) {
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
