package cache

import (
	"strconv"

	"github.com/m04kA/SMC-VisitService/pkg/types"
)

// Виды ключей (используются как метка в метриках)
const (
	KindCategories   = "categories"
	KindReservations = "reservations"
)

// CategoriesKey ключ списка категорий
func CategoriesKey() string {
	return KindCategories
}

// ReservationsKey ключ бронирований на дату (без поколения)
func ReservationsKey(date types.Date) string {
	return KindReservations + ":" + date.String()
}

// ReservationsGenerationKey счетчик поколений бронирований на дату.
// Увеличивается после успешного создания бронирования на эту дату.
func ReservationsGenerationKey(date types.Date) string {
	return ReservationsKey(date) + ":gen"
}

// VersionedKey ключ данных конкретного поколения
func VersionedKey(key string, generation int64) string {
	return key + ":v" + strconv.FormatInt(generation, 10)
}
