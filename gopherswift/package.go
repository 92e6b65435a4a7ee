// Package gopherswift contains a Gophercloud-backed transport for
// swiftremote.
//
// If the application already authenticates through Gophercloud
// (https://github.com/gophercloud/gophercloud), Wrap turns its
// object-storage service client into a swiftremote.Backend, re-using the
// Keystone token that Gophercloud holds:
//
//	authOptions, err := openstack.AuthOptionsFromEnv()
//	provider, err := openstack.AuthenticatedClient(authOptions)
//	client, err := openstack.NewObjectStorageV1(provider, gophercloud.EndpointOpts{})
//
//	backend := gopherswift.Wrap(client)
//	url := gopherswift.ObjectURL(client, "docs", "invoice.pdf")
//	obj := swiftremote.NewFromHeaders(backend, "invoice.pdf", headers, "", url)
//
// The token argument of the swiftremote factories can stay empty: the
// wrapped client injects its own X-Auth-Token on every request and renews
// it once when the server answers 401.
package gopherswift

import (
	"io"
	"net/http"
	"strings"

	"github.com/gophercloud/gophercloud"
	"github.com/swiftkit/swiftremote"
)

// Wrap returns a Backend that executes requests through the given service
// client. The client must refer to a Swift endpoint, i.e. it should have
// been created by openstack.NewObjectStorageV1().
func Wrap(client *gophercloud.ServiceClient) swiftremote.Backend {
	return &backend{client}
}

// ObjectURL resolves the canonical URL of an object within a container on
// the service client's endpoint. The object name passes through verbatim;
// slashes in it are meaningful to Swift and are kept.
func ObjectURL(client *gophercloud.ServiceClient, container, object string) string {
	return strings.TrimSuffix(client.Endpoint, "/") + "/" + container + "/" + object
}

type backend struct {
	c *gophercloud.ServiceClient
}

func (b *backend) Do(req *http.Request) (*http.Response, error) {
	return b.do(req, false)
}

func (b *backend) do(req *http.Request, afterReauth bool) (*http.Response, error) {
	provider := b.c.ProviderClient

	req.Header.Set("User-Agent", provider.UserAgent.Join())
	for key, value := range provider.AuthenticatedHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := provider.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	// 401 means the token expired; renew it once and restart the request
	if resp.StatusCode == http.StatusUnauthorized && !afterReauth {
		_, err := io.Copy(io.Discard, resp.Body)
		if err != nil {
			return nil, err
		}
		err = resp.Body.Close()
		if err != nil {
			return nil, err
		}
		err = provider.Reauthenticate(resp.Request.Header.Get("X-Auth-Token"))
		if err != nil {
			return nil, err
		}
		return b.do(req, true)
	}

	return resp, nil
}
