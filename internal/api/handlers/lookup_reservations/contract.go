package lookup_reservations

import (
	"context"

	lookupReservations "github.com/m04kA/SMC-VisitService/internal/usecase/lookup_reservations"
)

type LookupReservationsUseCase interface {
	Execute(ctx context.Context, req *lookupReservations.Request) (*lookupReservations.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
