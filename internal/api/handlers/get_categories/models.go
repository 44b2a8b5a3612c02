package get_categories

import "github.com/m04kA/SMC-VisitService/internal/domain"

// CategoryResponse HTTP response model
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FromDomain конвертирует категории в HTTP response
func FromDomain(categories []domain.VisitCategory) []CategoryResponse {
	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{ID: c.ID, Name: c.Name}
	}
	return response
}
