package cli

import (
	"context"
	"net"
	"net/http"
	"net/url"
)

func (api *APIClient) buildHTTPClientAndAddress() (*http.Client, string, error) {
	u, err := url.Parse(api.apiAddress)
	if err != nil {
		return nil, "", err
	}
	if u.Scheme != "unix" {
		return &http.Client{}, api.apiAddress, nil
	}

	socketPath := u.Path
	return &http.Client{
		Transport: &http.Transport{
			DialContext: func(_ context.Context, _, _ string) (net.Conn, error) {
				return net.Dial("unix", socketPath)
			},
		},
	}, "http://unix", nil
}
