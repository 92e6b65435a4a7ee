// Package swiftremote provides a client-side proxy for a single object
// stored in an OpenStack Swift style object store. An Object carries the
// server-reported metadata (size, checksum, modification time, user
// attributes) without holding the content in memory; content access
// transparently fetches from the server, optionally verifying the checksum
// and caching the bytes locally.
package swiftremote

import (
	"crypto/md5"
	"encoding/hex"
	"time"
)

// baseObject holds the attributes shared between purely-local and remote
// objects: a name, a content type, and an optional local content buffer.
type baseObject struct {
	name        string
	contentType string

	// content is only meaningful while hasContent is true. An empty but
	// present buffer is distinct from an absent one.
	content    []byte
	hasContent bool
}

// Name returns the object name, immutable after construction.
func (b *baseObject) Name() string {
	return b.name
}

// ContentType returns the object's MIME type.
func (b *baseObject) ContentType() string {
	return b.contentType
}

// SetContent replaces the local content buffer. The remote side is not
// touched; writing local changes back to the server is up to the caller.
func (b *baseObject) SetContent(data []byte) {
	b.content = data
	b.hasContent = true
}

func (b *baseObject) localEtag() string {
	return md5hex(b.content)
}

func md5hex(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// LocalObject is an object that exists only in memory, with no remote
// counterpart. Its size and checksum are always computed from the buffer.
type LocalObject struct {
	baseObject
}

// NewLocalObject creates a purely-local object holding the given content.
func NewLocalObject(name, contentType string, content []byte) *LocalObject {
	o := &LocalObject{baseObject{name: name, contentType: contentType}}
	o.SetContent(content)
	return o
}

// SizeBytes returns the length of the content buffer.
func (o *LocalObject) SizeBytes() int64 {
	return int64(len(o.content))
}

// Etag returns the MD5 digest of the content buffer.
func (o *LocalObject) Etag() string {
	return o.localEtag()
}

// Object represents a single object stored remotely. It is created through
// NewFromListing or NewFromHeaders and holds the metadata those carry;
// Content, Stream and Refresh talk to the server through the injected
// Backend.
//
// An Object is not safe for concurrent use. Calls that touch the local
// buffer or issue requests must be serialized by the caller.
type Object struct {
	baseObject

	backend Backend
	token   string
	url     string

	// server-authoritative fields, valid as of the last response seen
	sizeBytes    int64
	etag         string
	lastModified time.Time
	metadata     map[string]string

	verifyContent bool
	caching       bool
}

func newObject(backend Backend, name, token, url string) *Object {
	return &Object{
		baseObject:    baseObject{name: name},
		backend:       backend,
		token:         token,
		url:           url,
		verifyContent: true,
	}
}

// URL returns the canonical remote address of the object.
func (o *Object) URL() string {
	return o.url
}

// SizeBytes returns the object size in bytes. While a non-empty local buffer
// is present its length wins over the server-reported size, so local edits
// are reflected immediately.
func (o *Object) SizeBytes() int64 {
	if o.hasContent && len(o.content) > 0 {
		return int64(len(o.content))
	}
	return o.sizeBytes
}

// Etag returns the object checksum. While a non-empty local buffer is
// present the digest of the buffer wins over the server-reported etag.
func (o *Object) Etag() string {
	if o.hasContent && len(o.content) > 0 {
		return o.localEtag()
	}
	return o.etag
}

// LastModified returns the server-reported modification time.
func (o *Object) LastModified() time.Time {
	return o.lastModified
}

// Metadata returns the user-defined attributes of the object, as of the
// most recent server response. Each fetch replaces the set wholesale; it is
// never merged incrementally.
func (o *Object) Metadata() map[string]string {
	return o.metadata
}

// SetCaching controls whether Content keeps fetched bytes in the local
// buffer. Changing the flag never evicts an already-cached buffer and never
// triggers a fetch; it only affects future Content calls. Caching is
// disabled by default.
func (o *Object) SetCaching(enabled bool) {
	o.caching = enabled
}

// IsCaching reports whether fetched content is kept locally.
func (o *Object) IsCaching() bool {
	return o.caching
}

// SetContentVerification controls whether Content checks the fetched bytes
// against the object's etag. Verification is enabled by default.
func (o *Object) SetContentVerification(enabled bool) {
	o.verifyContent = enabled
}

// IsVerifyingContent reports whether Content checks fetched bytes against
// the object's etag.
func (o *Object) IsVerifyingContent() bool {
	return o.verifyContent
}

// IsDirty reports whether the local content buffer has diverged from the
// last known remote checksum. It never performs I/O; without a local buffer
// it is always false.
func (o *Object) IsDirty() bool {
	if !o.hasContent {
		return false
	}
	return o.localEtag() != o.etag
}

// Invalidate drops the local content buffer without touching the server.
// The next Content or Stream call fetches fresh bytes.
func (o *Object) Invalidate() {
	o.content = nil
	o.hasContent = false
}
