package handlers

import (
	"net/http"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/utils"
)

// ActorHandler handles the actor routes
type ActorHandler struct {
	catalog CatalogServiceInterface
}

// NewActorHandler creates a new ActorHandler
func NewActorHandler(catalog CatalogServiceInterface) *ActorHandler {
	return &ActorHandler{
		catalog: catalog,
	}
}

// Top returns the five actors appearing in the most stocked films
func (h *ActorHandler) Top(w http.ResponseWriter, r *http.Request) {
	actors, err := h.catalog.TopActors(r.Context())
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, actors)
}

// GetActor returns an actor with top_movies. An unknown id answers null with 200.
func (h *ActorHandler) GetActor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, constants.ParamActorID)
	if !ok {
		utils.NotFound(w, constants.MsgRouteNotFound)
		return
	}

	actor, err := h.catalog.GetActor(r.Context(), id)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, actor)
}
