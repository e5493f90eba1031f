package probe

import (
	"database/sql"
	"net/url"
	"strings"

	"github.com/go-sql-driver/mysql"
	log "github.com/sirupsen/logrus"
)

type mySQLProbe struct {
	dsn string
}

func newMySQLProbe(u *url.URL) *mySQLProbe {
	password, _ := u.User.Password()

	connCfg := mysql.Config{
		User:   u.User.Username(),
		Passwd: password,
		Net:    "tcp",
		Addr:   hostWithDefaultPort(u, "3306"),
		DBName: strings.TrimPrefix(u.Path, "/"),
	}

	return &mySQLProbe{
		dsn: connCfg.FormatDSN(),
	}
}

func (m *mySQLProbe) Exec() error {
	db, err := sql.Open("mysql", m.dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := db.Query("SELECT 1")
	if err != nil {
		return err
	}
	rows.Close()

	log.WithFields(log.Fields{"kind": "probe", "name": "mysql", "status": "alive"}).Debug()
	return nil
}
