package cli

import (
	"fmt"
	"net/url"
)

// APIClient talks to a running hibernite init over its control api,
// usually via the unix socket inside the container.
type APIClient struct {
	apiAddress string
}

func NewAPIClient(apiAddress string) *APIClient {
	return &APIClient{
		apiAddress: apiAddress,
	}
}

func (api *APIClient) Status() APIResponse {
	client, addr, err := api.buildHTTPClientAndAddress()
	if err != nil {
		return &CommonAPIResponse{Error: err}
	}

	return NewAPIResponse(client.Get(fmt.Sprintf("%s/v1/status", addr)))
}

func (api *APIClient) Suspend() APIResponse {
	client, addr, err := api.buildHTTPClientAndAddress()
	if err != nil {
		return &CommonAPIResponse{Error: err}
	}

	return NewAPIResponse(client.Post(fmt.Sprintf("%s/v1/suspend", addr), "application/json", nil))
}

// Resume thaws the workload. A non-empty generation restricts the resume to
// one suspend cycle; the init discards it when that cycle is already over.
func (api *APIClient) Resume(generation string) APIResponse {
	client, addr, err := api.buildHTTPClientAndAddress()
	if err != nil {
		return &CommonAPIResponse{Error: err}
	}

	target := fmt.Sprintf("%s/v1/resume", addr)
	if generation != "" {
		target = fmt.Sprintf("%s?generation=%s", target, url.QueryEscape(generation))
	}

	return NewAPIResponse(client.Post(target, "application/json", nil))
}
