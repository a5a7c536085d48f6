package constants

// Base Routes
const (
	APIBasePath = "/api"
	HealthPath  = "/health"
	VersionPath = "/version"
	MetricsPath = "/metrics"
)

// Film Routes
const (
	FilmsTopRented    = "/api/films/top-rented"
	FilmsSearchPath   = "/api/films/search"
	FilmsRentPath     = "/api/films/rent"
	FilmDetailPattern = "/api/films/{film_id:[0-9]+}"
)

// Actor Routes
const (
	ActorsTopPath      = "/api/actors/top"
	ActorDetailPattern = "/api/actors/{actor_id:[0-9]+}"
)

// URL Parameters
const (
	ParamFilmID  = "film_id"
	ParamActorID = "actor_id"
)

// Query Parameters
const (
	QueryParamSearchBy    = "by"
	QueryParamSearchQuery = "q"
)

// Context keys
const (
	RequestIDContextKey = "request_id"
)
