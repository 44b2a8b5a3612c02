package domain

// VisitCategory is a named kind of visit that can be scheduled.
// Categories are managed outside of the service and are read-only here.
type VisitCategory struct {
	ID   int64
	Name string
}
