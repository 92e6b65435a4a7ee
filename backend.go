package swiftremote

import "net/http"

// Backend executes the HTTP requests made on behalf of remote objects. It
// is injected at construction time, which keeps the library free of any
// process-wide transport state and lets tests substitute a fake.
//
// *http.Client satisfies this interface directly. Applications that
// authenticate through Gophercloud can use gopherswift.Wrap instead, which
// re-uses the Keystone token held by the service client.
type Backend interface {
	Do(req *http.Request) (*http.Response, error)
}
