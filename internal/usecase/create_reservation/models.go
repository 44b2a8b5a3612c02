package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-VisitService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CategoryID    int64      // ID категории выбранного слота
	VisitDate     types.Date // Дата выбранного слота
	VisitTime     int        // Час выбранного слота (9..21)
	GuestName     string     // Имя гостя
	GuestPhone    string     // Телефон гостя (010XXXXXXXX)
	GuestPassword string     // PIN из 4 цифр
}

// Response модель ответа с созданным бронированием (без PIN)
type Response struct {
	ID         int64
	CategoryID int64
	VisitDate  types.Date
	VisitTime  int
	GuestName  string
	GuestPhone string
	CreatedAt  time.Time
}
