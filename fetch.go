package swiftremote

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/sapcc/go-bits/logg"
)

// fetch synchronizes the object's metadata with the server, issuing a GET
// when includeBody is set and a HEAD otherwise. This is the single point
// where local state picks up what the server reports; Content, Stream,
// Refresh and Exists all funnel through it. On success the caller owns the
// returned response and must close its body.
func (o *Object) fetch(includeBody bool) (*http.Response, error) {
	method := http.MethodHead
	if includeBody {
		method = http.MethodGet
	}

	req, err := http.NewRequest(method, o.url, nil)
	if err != nil {
		return nil, err
	}
	if o.token != "" {
		req.Header.Set("X-Auth-Token", o.token)
	}

	logg.Debug("%s %s", method, o.url)

	resp, err := o.backend.Do(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// expected
	case http.StatusNotFound:
		resp.Body.Close()
		return nil, ErrNotFound
	default:
		resp.Body.Close()
		return nil, &UnexpectedStatusError{
			Method:     method,
			URL:        o.url,
			Status:     resp.Status,
			StatusCode: resp.StatusCode,
		}
	}

	o.applyHeaders(resp.Header)
	return resp, nil
}

// Content returns the object's content as a single in-memory buffer. A
// present local buffer is returned as-is, so local edits are never silently
// discarded by a read. Otherwise the content is fetched, checked against the
// object's etag while verification is enabled, and kept in the local buffer
// only while caching is enabled; without caching every call fetches anew.
func (o *Object) Content() ([]byte, error) {
	if o.hasContent {
		return o.content, nil
	}

	resp, err := o.fetch(true)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	if o.verifyContent {
		computed := md5hex(data)
		if computed != o.etag {
			return nil, &ChecksumError{Computed: computed, Expected: o.etag}
		}
	}

	if o.caching {
		o.SetContent(data)
	}
	return data, nil
}

// Stream returns a read-only stream over the object's content. With refresh
// unset and a local buffer present, the buffer is wrapped without any I/O;
// otherwise the server's response body is handed back directly, unbuffered
// and unverified. Every call produces a new stream, and the caller must
// close it.
func (o *Object) Stream(refresh bool) (io.ReadCloser, error) {
	if !refresh && o.hasContent {
		return io.NopCloser(bytes.NewReader(o.content)), nil
	}

	resp, err := o.fetch(true)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Refresh re-synchronizes the object with the server. Any local content
// buffer is discarded unconditionally, local edits included, then metadata
// is re-stamped from a fresh response: a GET when fetchContent is set, whose
// body becomes the new local buffer without verification, or a bodyless
// HEAD otherwise.
func (o *Object) Refresh(fetchContent bool) error {
	o.Invalidate()

	resp, err := o.fetch(fetchContent)
	if err != nil {
		return err
	}

	if !fetchContent {
		resp.Body.Close()
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return err
	}
	o.SetContent(data)
	return nil
}

// Exists checks whether the object exists on the server, issuing a HEAD
// request. A successful probe also re-stamps the object's metadata.
func (o *Object) Exists() (bool, error) {
	resp, err := o.fetch(false)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	resp.Body.Close()
	return true, nil
}
