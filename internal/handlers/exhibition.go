package handlers

import (
	"net/http"

	"JEWELVISTA_BACK-END/internal/dto"
	"JEWELVISTA_BACK-END/internal/models"
	"JEWELVISTA_BACK-END/internal/utils"
)

// defaultCatalog is the fixed virtual exhibition collection
var defaultCatalog = []models.ExhibitionItem{
	{
		ID:          "manga-haram-01",
		Name:        "Manga Haram",
		Image:       "/static/images/manga_haram.jpg",
		Price:       185000,
		Description: "Temple necklace strung with mango motifs in antique gold.",
	},
	{
		ID:          "kasu-mala-01",
		Name:        "Kasu Mala",
		Image:       "/static/images/kasu_mala.jpg",
		Price:       142000,
		Description: "Coin necklace of Lakshmi kasu pendants.",
	},
	{
		ID:          "mayil-pendant-01",
		Name:        "Mayil Pendant",
		Image:       "/static/images/mayil_pendant.jpg",
		Price:       56000,
		Description: "Peacock pendant with ruby and emerald inlay.",
	},
	{
		ID:          "temple-haram-01",
		Name:        "Temple Haram",
		Image:       "/static/images/temple_haram.jpg",
		Price:       210000,
		Description: "Long haram with deity repousse work.",
	},
	{
		ID:          "vanki-01",
		Name:        "Vanki",
		Image:       "/static/images/vanki.jpg",
		Price:       98000,
		Description: "V-shaped armlet in the Nagas style.",
	},
	{
		ID:          "jhumka-01",
		Name:        "Jhumka",
		Image:       "/static/images/jhumka.jpg",
		Price:       34000,
		Description: "Bell-drop earrings with pearl fringe.",
	},
}

// ExhibitionHandler serves the read-only catalog listing
type ExhibitionHandler struct {
	items []models.ExhibitionItem
}

// NewExhibitionHandler creates an ExhibitionHandler over the default catalog
func NewExhibitionHandler() *ExhibitionHandler {
	return &ExhibitionHandler{items: defaultCatalog}
}

// List handles GET /virtual_exhibition
// @Summary Virtual exhibition catalog
// @Tags exhibition
// @Produce json
// @Success 200 {object} dto.ExhibitionResponse
// @Router /virtual_exhibition [get]
func (h *ExhibitionHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ExhibitionResponse{Items: h.items})
}
