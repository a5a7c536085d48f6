package service

import (
	"context"
	"errors"
	"time"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/database"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/metrics"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/models"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/repository"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/utils"
)

// RentalService creates rentals.
type RentalService struct {
	rentals      repository.RentalRepository
	staffID      int64
	queryTimeout time.Duration
}

// NewRentalService creates a new RentalService.
//
// Parameters:
//   - rentals: Repository for the rent statements
//   - staffID: Staff member recorded on every rental
//   - queryTimeout: Upper bound for one rent call; zero disables it
//
// Returns:
//   - A new RentalService instance
func NewRentalService(rentals repository.RentalRepository, staffID int64, queryTimeout time.Duration) *RentalService {
	return &RentalService{
		rentals:      rentals,
		staffID:      staffID,
		queryTimeout: queryTimeout,
	}
}

// Rent rents one available copy of a film to a customer.
//
// The customer check, the copy claim, the identifier read and the insert run
// in one serializable transaction. Errors are AppErrors: 400 for a bad
// request, 404 for an unknown customer, 409 when no copy is free or a
// concurrent rent won the race, 500 otherwise. Nothing is written on failure.
func (s *RentalService) Rent(ctx context.Context, req *models.RentRequest) (*models.RentResult, error) {
	if req == nil || req.FilmID <= 0 || req.CustomerID <= 0 {
		s.record(constants.RentalOutcomeInvalid, req, nil, utils.ErrValidation)
		return nil, utils.NewBadRequestError(constants.MsgFilmAndCustomerRequired)
	}

	ctx, cancel := withQueryTimeout(ctx, s.queryTimeout)
	defer cancel()

	var rental *models.Rental
	err := s.rentals.WithinTransaction(ctx, func(q database.Querier) error {
		exists, err := s.rentals.CustomerExists(ctx, q, req.CustomerID)
		if err != nil {
			return err
		}
		if !exists {
			return utils.NewNotFoundError("", constants.MsgCustomerNotFound)
		}

		inventoryID, err := s.rentals.ClaimAvailableInventory(ctx, q, req.FilmID)
		if err != nil {
			return err
		}

		rentalID, err := s.rentals.NextRentalID(ctx, q)
		if err != nil {
			return err
		}

		rental = models.NewRental(rentalID, inventoryID, req.CustomerID, s.staffID)
		return s.rentals.Create(ctx, q, rental)
	})

	if err != nil {
		appErr, outcome := classifyRentalError(err)
		s.record(outcome, req, nil, err)
		return nil, appErr
	}

	s.record(constants.RentalOutcomeCreated, req, rental, nil)
	return models.NewRentResult(rental, req.FilmID), nil
}

// classifyRentalError maps a failed rent transaction to the client error and
// the metrics outcome
func classifyRentalError(err error) (*utils.AppError, string) {
	if utils.IsLockConflictError(err) || utils.IsDuplicateKeyError(err) {
		return utils.NewConflictError(constants.MsgConcurrentRental), constants.RentalOutcomeConflict
	}

	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		switch {
		case utils.IsNotFoundError(appErr):
			return appErr, constants.RentalOutcomeNotFound
		case utils.IsConflictError(appErr):
			return appErr, constants.RentalOutcomeNoCopies
		case appErr.StatusCode < 500:
			return appErr, constants.RentalOutcomeInvalid
		}
	}

	return utils.NewInternalServerError(err), constants.RentalOutcomeError
}

// record logs and counts a rent attempt
func (s *RentalService) record(outcome string, req *models.RentRequest, rental *models.Rental, err error) {
	var filmID, customerID, rentalID int64
	if req != nil {
		filmID, customerID = req.FilmID, req.CustomerID
	}
	if rental != nil {
		rentalID = rental.ID
	}

	metrics.ObserveRental(outcome)
	utils.LogRental(outcome, filmID, customerID, rentalID, err)
}
