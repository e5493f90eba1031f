package probe

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
)

type httpProbe struct {
	url     string
	timeout time.Duration
}

func newHTTPProbe(u *url.URL) *httpProbe {
	return &httpProbe{
		url:     u.String(),
		timeout: 5 * time.Second,
	}
}

func (h *httpProbe) Exec() error {
	client := &http.Client{
		Timeout: h.timeout,
	}

	res, err := client.Get(h.url)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return fmt.Errorf("http service %q returned status %q", h.url, res.Status)
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "http", "status": "alive", "host": h.url}).Debug()
	return nil
}
