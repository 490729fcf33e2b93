package cosmic

import "github.com/preston-bernstein/game-catalog-service/internal/providers"

// objectsResponse is the body of GET /buckets/{bucket}/objects. Single-object
// lookups may be answered with either "object" or a one-element "objects".
type objectsResponse struct {
	Objects []providers.Object `json:"objects"`
	Object  *providers.Object  `json:"object"`
	Total   int                `json:"total"`
	Limit   int                `json:"limit"`
	Skip    int                `json:"skip"`
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
