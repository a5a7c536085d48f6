package repository

import (
	"strings"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/utils"
)

// SearchMode selects which film attribute a search query matches against.
type SearchMode int

const (
	// SearchAll applies no filter
	SearchAll SearchMode = iota
	// SearchFilm matches the film title
	SearchFilm
	// SearchActor matches an actor's first, last or full name
	SearchActor
	// SearchGenre matches a category name
	SearchGenre
)

var searchModeNames = map[SearchMode]string{
	SearchAll:   "all",
	SearchFilm:  "film",
	SearchActor: "actor",
	SearchGenre: "genre",
}

// String returns the value accepted by the "by" query parameter
func (m SearchMode) String() string {
	if name, ok := searchModeNames[m]; ok {
		return name
	}
	return searchModeNames[SearchAll]
}

// ParseSearchMode maps the "by" query parameter to a SearchMode.
// Matching ignores case and surrounding whitespace; unknown values select SearchAll.
func ParseSearchMode(by string) SearchMode {
	by = strings.ToLower(strings.TrimSpace(by))
	for mode, name := range searchModeNames {
		if name == by {
			return mode
		}
	}
	return SearchAll
}

// SearchFilter is a parsed film search request.
type SearchFilter struct {
	Mode  SearchMode
	Query string
}

// NewSearchFilter builds a filter from the raw "by" and "q" query parameters
func NewSearchFilter(by, q string) SearchFilter {
	return SearchFilter{
		Mode:  ParseSearchMode(by),
		Query: strings.TrimSpace(q),
	}
}

// IsEmpty reports whether the filter matches every film
func (f SearchFilter) IsEmpty() bool {
	return f.Mode == SearchAll || f.Query == ""
}

// Predicate returns the WHERE condition for the filter and its bound
// arguments. The condition refers to the film table as "f". An empty filter
// returns an empty condition and no arguments.
//
// The query is wrapped in % wildcards without escaping, so % and _ typed by
// the caller act as LIKE wildcards.
func (f SearchFilter) Predicate() (string, []interface{}) {
	if f.IsEmpty() {
		return "", nil
	}

	pattern := utils.ContainsPattern(f.Query)

	switch f.Mode {
	case SearchFilm:
		return filmTitlePredicate, []interface{}{pattern}
	case SearchActor:
		return actorNamePredicate, []interface{}{pattern, pattern, pattern}
	case SearchGenre:
		return categoryNamePredicate, []interface{}{pattern}
	}

	return "", nil
}

const (
	filmTitlePredicate = `LOWER(f.title) LIKE LOWER(?)`

	actorNamePredicate = `EXISTS (
		SELECT 1
		FROM film_actor fa
		JOIN actor a ON a.actor_id = fa.actor_id
		WHERE fa.film_id = f.film_id
		  AND (LOWER(a.first_name) LIKE LOWER(?)
		    OR LOWER(a.last_name) LIKE LOWER(?)
		    OR LOWER(CONCAT(a.first_name, ' ', a.last_name)) LIKE LOWER(?))
	)`

	categoryNamePredicate = `EXISTS (
		SELECT 1
		FROM film_category fc
		JOIN category c ON c.category_id = fc.category_id
		WHERE fc.film_id = f.film_id
		  AND LOWER(c.name) LIKE LOWER(?)
	)`
)
