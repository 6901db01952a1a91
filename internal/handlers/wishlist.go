package handlers

import (
	"net/http"
	"time"

	"JEWELVISTA_BACK-END/internal/dto"
	"JEWELVISTA_BACK-END/internal/middleware"
	"JEWELVISTA_BACK-END/internal/models"
	"JEWELVISTA_BACK-END/internal/storage"
	"JEWELVISTA_BACK-END/internal/utils"
)

// WishlistHandler manages the caller's saved items
type WishlistHandler struct {
	wishlist storage.WishlistStore
}

// NewWishlistHandler creates a new WishlistHandler instance
func NewWishlistHandler(wishlist storage.WishlistStore) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

// Add handles POST /add_to_wishlist
// @Summary Add an item to the caller's wishlist
// @Description Upserts an entry keyed by the session identity and item_id
// @Tags wishlist
// @Accept json
// @Produce json
// @Param request body dto.AddToWishlistRequest true "Item to save"
// @Success 201 {object} dto.WishlistAckResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /add_to_wishlist [post]
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Owning identity always comes from the session, never the payload
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	var req dto.AddToWishlistRequest
	isJSON := utils.IsJSONRequest(r)
	if isJSON {
		if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid form data", err.Error())
			return
		}
		req.ItemID = r.PostFormValue("item_id")
		req.ItemName = r.PostFormValue("item_name")
		req.ItemImage = r.PostFormValue("item_image")
		req.Description = r.PostFormValue("description")
	}

	if req.ItemID == "" || req.ItemName == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "item_id and item_name are required")
		return
	}

	entry := &models.WishlistEntry{
		Email:       email,
		ItemID:      req.ItemID,
		ItemName:    req.ItemName,
		ItemImage:   req.ItemImage,
		Description: req.Description,
		AddedDate:   models.FormatAddedDate(time.Now()),
	}

	if err := h.wishlist.Put(r.Context(), entry); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Wishlist error", err.Error())
		return
	}

	if isJSON {
		utils.WriteJSONResponse(w, http.StatusCreated, dto.WishlistAckResponse{
			Message: "Item added to wishlist",
			ItemID:  req.ItemID,
		})
		return
	}

	http.Redirect(w, r, "/wishlist", http.StatusSeeOther)
}

// List handles GET /wishlist
// @Summary List the caller's wishlist
// @Description Returns entries for the session identity only
// @Tags wishlist
// @Produce json
// @Success 200 {object} dto.WishlistResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /wishlist [get]
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	entries, err := h.wishlist.List(r.Context(), email)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Wishlist error", err.Error())
		return
	}

	items := make([]dto.WishlistItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.WishlistItem{
			ItemID:      e.ItemID,
			ItemName:    e.ItemName,
			ItemImage:   e.ItemImage,
			Description: e.Description,
			AddedDate:   e.AddedDate,
		})
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.WishlistResponse{Wishlist: items})
}

// Remove handles POST /remove_from_wishlist
// @Summary Remove an item from the caller's wishlist
// @Description Deleting an absent item is a no-op
// @Tags wishlist
// @Accept json
// @Produce json
// @Param request body dto.RemoveFromWishlistRequest true "Item to remove"
// @Success 200 {object} dto.WishlistAckResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /remove_from_wishlist [post]
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	var req dto.RemoveFromWishlistRequest
	isJSON := utils.IsJSONRequest(r)
	if isJSON {
		if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid form data", err.Error())
			return
		}
		req.ItemID = r.PostFormValue("item_id")
	}

	if req.ItemID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "item_id is required")
		return
	}

	if err := h.wishlist.Delete(r.Context(), email, req.ItemID); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Wishlist error", err.Error())
		return
	}

	if isJSON {
		utils.WriteJSONResponse(w, http.StatusOK, dto.WishlistAckResponse{
			Message: "Item removed from wishlist",
			ItemID:  req.ItemID,
		})
		return
	}

	http.Redirect(w, r, "/wishlist", http.StatusSeeOther)
}
