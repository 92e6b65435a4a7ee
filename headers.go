package swiftremote

import (
	"net/http"
	"strconv"
	"strings"
)

// MetadataPrefix marks the response headers that carry user-defined object
// attributes. Swift reports one X-Object-Meta-<key> header per attribute.
const MetadataPrefix = "X-Object-Meta-"

// metadataFromHeaders extracts the user-defined attributes from a response
// header set. Keys are the header names with the prefix stripped; values
// pass through verbatim, since Swift mandates no encoding scheme for them.
func metadataFromHeaders(headers http.Header) map[string]string {
	md := make(map[string]string)
	for key, values := range headers {
		if !strings.HasPrefix(key, MetadataPrefix) || len(values) == 0 {
			continue
		}
		md[strings.TrimPrefix(key, MetadataPrefix)] = values[0]
	}
	return md
}

// applyHeaders re-stamps the server-authoritative fields from a response
// header set, keeping the stored value wherever a header is absent, and
// replaces the user metadata wholesale.
func (o *Object) applyHeaders(headers http.Header) {
	if v := headers.Get("Content-Type"); v != "" {
		o.contentType = v
	}
	if v := headers.Get("Content-Length"); v != "" {
		if size, err := strconv.ParseInt(v, 10, 64); err == nil {
			o.sizeBytes = size
		}
	}
	if v := headers.Get("Etag"); v != "" {
		o.etag = v
	}
	if v := headers.Get("Last-Modified"); v != "" {
		if t, err := http.ParseTime(v); err == nil {
			o.lastModified = t
		}
	}
	o.metadata = metadataFromHeaders(headers)
}
