package swiftremote

import (
	"fmt"
	"net/http"
	"time"
)

// ListingEntry is one record of a detailed container listing, as returned
// by a GET request on a container with format=json. Listings carry basic
// metadata only; user-defined attributes require a HEAD on the object.
type ListingEntry struct {
	Name         string `json:"name"`
	SizeBytes    int64  `json:"bytes"`
	ContentType  string `json:"content_type"`
	Etag         string `json:"hash"`
	LastModified string `json:"last_modified"`
}

// NewFromListing creates an Object from a container listing record. No
// request is issued; the object starts without a local content buffer and
// without user metadata. The token authorizes later fetches against url.
func NewFromListing(backend Backend, entry ListingEntry, token, url string) (*Object, error) {
	// listing timestamps come without a timezone and are UTC
	lastMod, err := time.Parse(time.RFC3339Nano, entry.LastModified+"Z")
	if err != nil {
		return nil, fmt.Errorf("bad last_modified %q: %w", entry.LastModified, err)
	}

	o := newObject(backend, entry.Name, token, url)
	o.contentType = entry.ContentType
	o.sizeBytes = entry.SizeBytes
	o.etag = entry.Etag
	o.lastModified = lastMod
	o.metadata = make(map[string]string)
	return o, nil
}

// NewFromHeaders creates an Object from the response headers of a GET or
// HEAD on the object. User metadata is extracted from the headers carrying
// the MetadataPrefix. No request is issued.
func NewFromHeaders(backend Backend, name string, headers http.Header, token, url string) *Object {
	o := newObject(backend, name, token, url)
	o.applyHeaders(headers)
	return o
}
