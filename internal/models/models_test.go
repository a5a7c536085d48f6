package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/models"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func TestFilm_JSONNullableFields(t *testing.T) {
	film := models.Film{ID: 7, Title: "AIRPLANE SIERRA", RentalCount: 0}

	data, err := json.Marshal(film)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"film_id": 7,
		"title": "AIRPLANE SIERRA",
		"description": null,
		"release_year": null,
		"length": null,
		"rating": null,
		"category": null,
		"rental_count": 0
	}`, string(data))
}

func TestFilmSearchResult_FlattensFilm(t *testing.T) {
	result := models.FilmSearchResult{
		Film: models.Film{
			ID:          1,
			Title:       "ACADEMY DINOSAUR",
			ReleaseYear: int64Ptr(2006),
			Rating:      strPtr("PG"),
			Category:    strPtr("Documentary"),
			RentalCount: 23,
		},
		Actors: strPtr("CHRISTIAN GABLE, PENELOPE GUINESS"),
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "ACADEMY DINOSAUR", decoded["title"])
	assert.Equal(t, "CHRISTIAN GABLE, PENELOPE GUINESS", decoded["actors"])
	assert.NotContains(t, decoded, "Film")
}

func TestFilmSearchResult_NullActors(t *testing.T) {
	data, err := json.Marshal(models.FilmSearchResult{Film: models.Film{ID: 2, Title: "ACE GOLDFINGER"}})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "actors")
	assert.Nil(t, decoded["actors"])
}

func TestNewActorDetail(t *testing.T) {
	t.Run("Nil actor", func(t *testing.T) {
		assert.Nil(t, models.NewActorDetail(nil, []models.ActorFilm{{ID: 1}}))
	})

	t.Run("Nil films become empty list", func(t *testing.T) {
		detail := models.NewActorDetail(&models.Actor{ID: 1, FirstName: "PENELOPE", LastName: "GUINESS", FilmCount: 19}, nil)

		data, err := json.Marshal(detail)
		require.NoError(t, err)
		assert.JSONEq(t, `{"actor_id":1,"first_name":"PENELOPE","last_name":"GUINESS","film_count":19,"top_movies":[]}`, string(data))
	})
}

func TestNewRental(t *testing.T) {
	before := time.Now().UTC()
	rental := models.NewRental(16050, 367, 130, 1)

	assert.Equal(t, int64(16050), rental.ID)
	assert.Equal(t, int64(367), rental.InventoryID)
	assert.Equal(t, int64(130), rental.CustomerID)
	assert.Equal(t, int64(1), rental.StaffID)
	assert.Equal(t, time.UTC, rental.RentalDate.Location())
	assert.WithinDuration(t, before, rental.RentalDate, time.Second)
	assert.Nil(t, rental.ReturnDate)
}

func TestNewRentResult(t *testing.T) {
	result := models.NewRentResult(models.NewRental(16050, 367, 130, 1), 80)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"rental_id":16050,"film_id":80,"customer_id":130,"inventory_id":367}`, string(data))
}
