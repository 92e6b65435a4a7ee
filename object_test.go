package swiftremote

import (
	"net/http"
	"testing"
	"time"

	"github.com/sapcc/go-bits/assert"
)

func TestNewFromListing(t *testing.T) {
	entry := ListingEntry{
		Name:         "docs/report.pdf",
		SizeBytes:    1270,
		ContentType:  "application/pdf",
		Etag:         "d41d8cd98f00b204e9800998ecf8427e",
		LastModified: "2023-03-01T12:00:00.000000",
	}

	obj, err := NewFromListing(http.DefaultClient, entry, "token", "http://example.com/v1/AUTH_test/docs/report.pdf")
	if err != nil {
		t.Fatalf("NewFromListing failed: %v", err)
	}

	if obj.Name() != "docs/report.pdf" {
		t.Errorf("wrong name %q", obj.Name())
	}
	if obj.ContentType() != "application/pdf" {
		t.Errorf("wrong content type %q", obj.ContentType())
	}
	if obj.SizeBytes() != 1270 {
		t.Errorf("wrong size %d", obj.SizeBytes())
	}
	if obj.Etag() != entry.Etag {
		t.Errorf("wrong etag %q", obj.Etag())
	}
	want := time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)
	if !obj.LastModified().Equal(want) {
		t.Errorf("wrong modification time %v", obj.LastModified())
	}
	if obj.hasContent {
		t.Error("listing-built object has a content buffer")
	}
	if len(obj.Metadata()) != 0 {
		t.Error("listing-built object has user metadata")
	}
}

func TestNewFromListingBadTimestamp(t *testing.T) {
	entry := ListingEntry{Name: "x", LastModified: "not a timestamp"}
	_, err := NewFromListing(http.DefaultClient, entry, "token", "http://example.com/x")
	if err == nil {
		t.Fatal("expected an error for a malformed timestamp")
	}
}

func TestNewFromHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Content-Type", "text/html")
	headers.Set("Content-Length", "42")
	headers.Set("Etag", "0effb6e9baee00dc753b08b0a0879253")
	headers.Set("Last-Modified", "Wed, 01 Mar 2023 12:00:00 GMT")
	headers.Set("X-Object-Meta-Color", "blue")
	headers.Set("X-Object-Meta-Owner", "alice")
	headers.Set("X-Trans-Id", "tx123") // not metadata

	obj := NewFromHeaders(http.DefaultClient, "index.html", headers, "token", "http://example.com/v1/AUTH_test/web/index.html")

	if obj.ContentType() != "text/html" {
		t.Errorf("wrong content type %q", obj.ContentType())
	}
	if obj.SizeBytes() != 42 {
		t.Errorf("wrong size %d", obj.SizeBytes())
	}
	if obj.Etag() != "0effb6e9baee00dc753b08b0a0879253" {
		t.Errorf("wrong etag %q", obj.Etag())
	}
	want := time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)
	if !obj.LastModified().Equal(want) {
		t.Errorf("wrong modification time %v", obj.LastModified())
	}
	assert.DeepEqual(t, "extracted metadata", obj.Metadata(), map[string]string{
		"Color": "blue",
		"Owner": "alice",
	})
	if obj.hasContent {
		t.Error("header-built object has a content buffer")
	}
}

func TestDefaults(t *testing.T) {
	obj := NewFromHeaders(http.DefaultClient, "x", http.Header{}, "token", "http://example.com/x")
	if !obj.IsVerifyingContent() {
		t.Error("verification not enabled by default")
	}
	if obj.IsCaching() {
		t.Error("caching enabled by default")
	}
}

func TestAccessorFallback(t *testing.T) {
	headers := http.Header{}
	headers.Set("Content-Length", "1000")
	headers.Set("Etag", "feedface")
	obj := NewFromHeaders(http.DefaultClient, "x", headers, "token", "http://example.com/x")

	// no buffer: server values
	if obj.SizeBytes() != 1000 || obj.Etag() != "feedface" {
		t.Error("server-authoritative values not returned without a buffer")
	}

	// populated buffer: locally computed values
	local := []byte("local bytes")
	obj.SetContent(local)
	if obj.SizeBytes() != int64(len(local)) {
		t.Errorf("size not derived from buffer, got %d", obj.SizeBytes())
	}
	if obj.Etag() != md5hex(local) {
		t.Errorf("etag not derived from buffer, got %q", obj.Etag())
	}

	// empty but present buffer: back to server values
	obj.SetContent([]byte{})
	if obj.SizeBytes() != 1000 || obj.Etag() != "feedface" {
		t.Error("empty buffer did not fall back to server values")
	}
}

func TestLocalObject(t *testing.T) {
	content := []byte("purely local")
	obj := NewLocalObject("notes.txt", "text/plain", content)

	if obj.Name() != "notes.txt" {
		t.Errorf("wrong name %q", obj.Name())
	}
	if obj.ContentType() != "text/plain" {
		t.Errorf("wrong content type %q", obj.ContentType())
	}
	if obj.SizeBytes() != int64(len(content)) {
		t.Errorf("wrong size %d", obj.SizeBytes())
	}
	if obj.Etag() != md5hex(content) {
		t.Errorf("wrong etag %q", obj.Etag())
	}
}
