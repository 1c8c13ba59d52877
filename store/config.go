package store

import (
	"net/url"
	"strconv"

	"github.com/kelseyhightower/envconfig"

	"github.com/tidepool-org/dieticians/config"
)

type Config struct {
	DatabaseName string `envconfig:"TIDEPOOL_DIETICIANS_DATABASE_NAME" default:"dieticians"`
	Hosts        string `envconfig:"TIDEPOOL_STORE_ADDRESSES" default:"localhost"`
	OptParams    string `envconfig:"TIDEPOOL_STORE_OPT_PARAMS"`
	Password     string `envconfig:"TIDEPOOL_STORE_PASSWORD"`
	Scheme       string `envconfig:"TIDEPOOL_STORE_SCHEME" default:"mongodb"`
	Ssl          bool   `envconfig:"TIDEPOOL_STORE_TLS"`
	User         string `envconfig:"TIDEPOOL_STORE_USERNAME"`
}

func NewConfig() (*Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConnectionString returns the mongo uri. Hosts is a comma separated list of
// host:port pairs, OptParams is appended verbatim to the query.
func (c *Config) GetConnectionString() string {
	u := url.URL{
		Scheme: "mongodb",
		Host:   "localhost",
		Path:   "/",
	}
	if c.Scheme != "" {
		u.Scheme = c.Scheme
	}
	if c.Hosts != "" {
		u.Host = c.Hosts
	}
	if c.User != "" && c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else if c.User != "" {
		u.User = url.User(c.User)
	}

	u.RawQuery = "ssl=" + strconv.FormatBool(c.Ssl)
	if c.OptParams != "" {
		u.RawQuery += "&" + c.OptParams
	}
	return u.String()
}
