package handlers

import (
	"net/http"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/metrics"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/models"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/utils"
)

// RentalHandler handles the rent route
type RentalHandler struct {
	rentals RentalServiceInterface
}

// NewRentalHandler creates a new RentalHandler
func NewRentalHandler(rentals RentalServiceInterface) *RentalHandler {
	return &RentalHandler{
		rentals: rentals,
	}
}

// Rent rents an available copy of a film to a customer
func (h *RentalHandler) Rent(w http.ResponseWriter, r *http.Request) {
	// Decode and validate the request body
	var req models.RentRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		appErr := utils.ParseError(err)
		if appErr.StatusCode >= http.StatusInternalServerError {
			utils.ErrorFromAppError(w, appErr)
			return
		}

		metrics.ObserveRental(constants.RentalOutcomeInvalid)
		utils.BadRequest(w, constants.MsgFilmAndCustomerRequired, rentRequestDetails(appErr))
		return
	}

	result, err := h.rentals.Rent(r.Context(), &req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, result)
}

// rentRequestDetails keeps the decoder or validator explanation next to the
// fixed rent error message
func rentRequestDetails(err *utils.AppError) map[string]any {
	if !utils.IsValidationError(err) {
		return map[string]any{"body": err.Message}
	}
	if err.Details != nil {
		return err.Details
	}
	return map[string]any{err.Field: err.Message}
}
