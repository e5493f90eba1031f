package probe

import (
	"fmt"
	"net/url"

	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

const (
	defaultVirtualHost = "/"
)

type amqpProbe struct {
	uri  string
	host string
}

func newAmqpProbe(u *url.URL) *amqpProbe {
	u.Host = hostWithDefaultPort(u, "5672")
	if u.Path == "" {
		u.Path = defaultVirtualHost
	}

	return &amqpProbe{
		uri:  u.String(),
		host: u.Host,
	}
}

func (a *amqpProbe) Exec() error {
	conn, err := amqp.Dial(a.uri)
	if err != nil {
		return fmt.Errorf("failed to dial amqp with url %q: %s", a.uri, err.Error())
	}
	defer conn.Close()

	log.WithFields(log.Fields{"kind": "probe", "name": "amqp", "status": "alive", "host": a.host}).Debug()
	return nil
}
