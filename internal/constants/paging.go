package constants

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	SortLatest  = "latest"
	SortPopular = "popular"
)
