package probe

import (
	"fmt"
	"net/url"

	"github.com/hibernite/hibernite/internal/helper"
	"github.com/pkg/errors"
)

// FromURL builds a probe from a dependency URL, e.g. redis://cache:6379,
// mysql://user:pass@db/app or file:///var/run/ready. The whole URL may be
// given as "ENV:NAME" to keep credentials out of the process list.
func FromURL(raw string) (Probe, error) {
	u, err := url.Parse(helper.ResolveEnv(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid probe url %q", raw)
	}

	switch u.Scheme {
	case "redis":
		return newRedisProbe(u), nil
	case "mysql":
		return newMySQLProbe(u), nil
	case "mongodb":
		return newMongoDBProbe(u), nil
	case "amqp":
		return newAmqpProbe(u), nil
	case "http", "https":
		return newHTTPProbe(u), nil
	case "file":
		return &filesystemProbe{path: u.Path}, nil
	default:
		return nil, fmt.Errorf("unsupported probe scheme %q in %q", u.Scheme, raw)
	}
}

func hostWithDefaultPort(u *url.URL, defaultPort string) string {
	if u.Port() != "" {
		return u.Host
	}
	return fmt.Sprintf("%s:%s", u.Hostname(), defaultPort)
}
