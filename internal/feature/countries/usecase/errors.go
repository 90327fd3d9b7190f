// Package usecase implements the business logic for the countries feature.
package usecase

import "fmt"

// UpstreamError reports a non-success response from the country catalog.
// It carries the upstream HTTP status and any textual detail from the body so
// handlers can surface what the catalog said without guessing.
type UpstreamError struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("upstream responded with status %d", e.Status)
	}
	return fmt.Sprintf("upstream responded with status %d: %s", e.Status, e.Detail)
}
