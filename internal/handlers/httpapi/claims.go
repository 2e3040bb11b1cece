package httpapi

import "net/http"

// Claims carries the caller identity attached to a request. Authentication
// happens upstream; this layer only reads the already-verified identity.
type Claims struct {
	// DeviceID identifies the submitting device
	DeviceID string

	// RecordedBy identifies the person entering scores
	RecordedBy string

	// IsOfficial is true for designated scorers whose edits take precedence
	IsOfficial bool
}

// ClaimsResolver extracts caller identity from a request
type ClaimsResolver interface {
	ResolveClaims(r *http.Request) *Claims
}

// headerClaims reads identity from trusted gateway headers
type headerClaims struct{}

// NewHeaderClaims creates a ClaimsResolver backed by request headers
func NewHeaderClaims() ClaimsResolver {
	return &headerClaims{}
}

func (c *headerClaims) ResolveClaims(r *http.Request) *Claims {
	return &Claims{
		DeviceID:   r.Header.Get("X-Device-ID"),
		RecordedBy: r.Header.Get("X-Recorded-By"),
		IsOfficial: r.Header.Get("X-Recorder-Role") == "official",
	}
}
