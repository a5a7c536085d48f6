package handlers

import (
	"net/http"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/utils"
)

// FilmHandler handles the film listing, detail and search routes
type FilmHandler struct {
	catalog CatalogServiceInterface
}

// NewFilmHandler creates a new FilmHandler
func NewFilmHandler(catalog CatalogServiceInterface) *FilmHandler {
	return &FilmHandler{
		catalog: catalog,
	}
}

// TopRented returns the five most rented films
func (h *FilmHandler) TopRented(w http.ResponseWriter, r *http.Request) {
	films, err := h.catalog.TopRentedFilms(r.Context())
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, films)
}

// GetFilm returns a single film. An unknown id answers null with 200.
func (h *FilmHandler) GetFilm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, constants.ParamFilmID)
	if !ok {
		utils.NotFound(w, constants.MsgRouteNotFound)
		return
	}

	film, err := h.catalog.GetFilm(r.Context(), id)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	// A nil *Film still marshals to null
	utils.JSON(w, http.StatusOK, film)
}

// Search returns the films matching the by/q query parameters
func (h *FilmHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	films, err := h.catalog.SearchFilms(r.Context(),
		query.Get(constants.QueryParamSearchBy),
		query.Get(constants.QueryParamSearchQuery),
	)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, films)
}
