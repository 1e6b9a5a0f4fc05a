package service

// DefaultPageSize is the fallback page size for list endpoints.
const DefaultPageSize = 20
