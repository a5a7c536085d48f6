// Package models provides the data structures returned and accepted by the Sakila API.
// This file contains the models of the rent write path.
package models

import (
	"time"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
)

// RentRequest is the body of a rent call. Zero identifiers are treated as missing.
type RentRequest struct {
	FilmID     int64 `json:"film_id" validate:"required,gt=0"`
	CustomerID int64 `json:"customer_id" validate:"required,gt=0"`
}

// Rental is a rental row as written by the API. Rentals are append-only.
type Rental struct {
	// ID is max(rental_id)+1 read inside the renting transaction
	ID int64 `json:"rental_id" db:"rental_id"`

	// RentalDate is the server UTC time at insert
	RentalDate time.Time `json:"rental_date" db:"rental_date"`

	// InventoryID is the claimed copy
	InventoryID int64 `json:"inventory_id" db:"inventory_id"`

	// CustomerID references the renting customer
	CustomerID int64 `json:"customer_id" db:"customer_id"`

	// StaffID is the configured staff member recorded on API rentals
	StaffID int64 `json:"staff_id" db:"staff_id"`

	// ReturnDate is nil while the rental is open
	ReturnDate *time.Time `json:"return_date" db:"return_date"`
}

// NewRental creates an open rental for the given copy and customer stamped with
// the current UTC time.
//
// Parameters:
//   - id: The rental identifier reserved for this row
//   - inventoryID: The claimed inventory item
//   - customerID: The renting customer
//   - staffID: The staff member recorded on the rental
//
// Returns:
//   - A new Rental with a nil ReturnDate
func NewRental(id, inventoryID, customerID, staffID int64) *Rental {
	return &Rental{
		ID:          id,
		RentalDate:  time.Now().UTC(),
		InventoryID: inventoryID,
		CustomerID:  customerID,
		StaffID:     staffID,
	}
}

// RentResult is the success body of a rent call.
type RentResult struct {
	OK          bool  `json:"ok"`
	RentalID    int64 `json:"rental_id"`
	FilmID      int64 `json:"film_id"`
	CustomerID  int64 `json:"customer_id"`
	InventoryID int64 `json:"inventory_id"`
}

// NewRentResult builds the success body for rental created for filmID.
func NewRentResult(rental *Rental, filmID int64) *RentResult {
	return &RentResult{
		OK:          constants.ResponseSuccess,
		RentalID:    rental.ID,
		FilmID:      filmID,
		CustomerID:  rental.CustomerID,
		InventoryID: rental.InventoryID,
	}
}
