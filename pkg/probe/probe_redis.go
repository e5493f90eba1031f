package probe

import (
	"net/url"

	"github.com/go-redis/redis"
	log "github.com/sirupsen/logrus"
)

type redisProbe struct {
	addr     string
	password string
}

func newRedisProbe(u *url.URL) *redisProbe {
	password, _ := u.User.Password()

	return &redisProbe{
		addr:     hostWithDefaultPort(u, "6379"),
		password: password,
	}
}

func (r *redisProbe) Exec() error {
	client := redis.NewClient(&redis.Options{
		Addr:     r.addr,
		Password: r.password,
	})
	defer client.Close()

	if _, err := client.Ping().Result(); err != nil {
		return err
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "redis", "status": "alive", "host": r.addr}).Debug()
	return nil
}
