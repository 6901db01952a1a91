package dto

import "JEWELVISTA_BACK-END/internal/models"

// ExhibitionResponse envelope for the catalog listing
type ExhibitionResponse struct {
	Items []models.ExhibitionItem `json:"items"`
}
