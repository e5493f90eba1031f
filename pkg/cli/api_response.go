package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/pretty"
)

type APIResponse interface {
	Print() error
	Err() error
	Decode(v interface{}) error
}

var _ APIResponse = &CommonAPIResponse{}

type CommonAPIResponse struct {
	StatusCode  int    `json:"statusCode"`
	Body        string `json:"body"`
	Error       error  `json:"error"`
	contentType string
}

func NewAPIResponse(resp *http.Response, err error) APIResponse {
	apiRes := &CommonAPIResponse{
		Error: err,
	}
	if resp == nil {
		return apiRes
	}

	apiRes.StatusCode = resp.StatusCode
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("failed to read body: %s", err.Error())
		return apiRes
	}
	apiRes.Body = string(out)
	apiRes.contentType = resp.Header.Get("Content-Type")

	if resp.StatusCode >= 400 && apiRes.Error == nil {
		apiRes.Error = fmt.Errorf("api returned status %d: %s", resp.StatusCode, apiRes.Body)
	}

	return apiRes
}

func (resp *CommonAPIResponse) Err() error {
	return resp.Error
}

// Decode unmarshals a JSON response body into v.
func (resp *CommonAPIResponse) Decode(v interface{}) error {
	if resp.Error != nil {
		return resp.Error
	}
	return json.Unmarshal([]byte(resp.Body), v)
}

func (resp *CommonAPIResponse) Print() error {
	var out string
	if resp.Error != nil {
		fmt.Println(resp.Error.Error())
		return nil
	}
	if len(resp.Body) == 0 {
		return nil
	}

	switch resp.contentType {
	default:
		out = resp.Body

	case "application/json":
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(resp.Body), "", "    "); err != nil {
			return err
		}
		out = string(pretty.Color(buf.Bytes(), nil))
	}

	fmt.Println(out)
	return nil
}
