package formhttp

import (
	"net/http"
	"strings"
)

const (
	// DataStarAcceptHeader is the Accept header value sent by DataStar.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarQueryParam carries DataStar signals on GET requests.
	DataStarQueryParam = "datastar"

	HXRequest = "HX-Request"
	HXReswap  = "HX-Reswap"
)

// IsDataStar reports whether r was issued by DataStar.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// IsHTMX reports whether r was issued by HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HXRequest) == "true"
}
