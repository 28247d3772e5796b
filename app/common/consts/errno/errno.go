package errno

const (
	StatusOK = 10000
)

const (
	InternalError = 50000 + iota
	InvalidParam
	SessionNotFound
	CatalogUnavailable
	ExtractionFailed
	PlantNotFound
	RecommendationFailed
	Unauthorized
)

const (
	CatalogRefreshError = 60000 + iota
	CatalogSourceError
)
