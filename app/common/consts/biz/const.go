package biz

import "time"

const (
	SessionTTL = time.Minute * 30

	DefaultPageSize = 20
	MaxPageSize     = 100

	// CatalogRefreshTask is the asynq task type for reloading the plant
	// catalog from its source.
	CatalogRefreshTask = "catalog:refresh"

	// AdminTokenHeader carries the operator token for admin-only routes.
	AdminTokenHeader = "X-Admin-Token"
)
