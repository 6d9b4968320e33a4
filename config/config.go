package config

import (
	"net/url"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
		// LogQueries logs every SQL statement at debug level.
		LogQueries bool
	}
	Migrations struct {
		// Dir holds goose migrations applied by the -migrate flag.
		Dir string
	}
}

// DatabaseURL builds a connection string for tools that do not take pg.Options.
func (c Config) DatabaseURL() string {
	host := c.Database.Addr
	if host == "" {
		host = "localhost:5432"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     host,
		Path:     "/" + c.Database.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
