package probe

import (
	"context"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type mongoDBProbe struct {
	uri  string
	host string
}

func newMongoDBProbe(u *url.URL) *mongoDBProbe {
	u.Host = hostWithDefaultPort(u, "27017")

	return &mongoDBProbe{
		uri:  u.String(),
		host: u.Host,
	}
}

func (m *mongoDBProbe) Exec() error {
	client, err := mongo.NewClient(options.Client().ApplyURI(m.uri))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "mongodb", "status": "alive", "host": m.host}).Debug()
	return nil
}
