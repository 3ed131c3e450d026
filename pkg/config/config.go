package config

import (
	"net"
	"net/url"
	"time"

	"github.com/arthur-debert/discomon/pkg/errors"
)

// disco:// master addresses use the master's default port
const discoDefaultPort = "8989"

// Config is the effective discomon configuration
type Config struct {
	Events Events `koanf:"events"`
	Poll   Poll   `koanf:"poll"`
	Master Master `koanf:"master"`
	Watch  Watch  `koanf:"watch"`
}

// Events selects how job events are shown
type Events struct {
	// Format label: "", "json", "nocolor" or anything else for auto
	Format string `koanf:"format"`
}

// Poll controls the polling loop
type Poll struct {
	Interval time.Duration `koanf:"interval"`
}

// Master locates the job controller
type Master struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

// Watch controls when watching ends
type Watch struct {
	// StopOnFinish ends the watch once the job is no longer active
	StopOnFinish bool `koanf:"stop_on_finish"`
}

// Validate checks values that cannot be checked by decoding alone
func (c *Config) Validate() error {
	if c.Poll.Interval <= 0 {
		return errors.Newf(errors.ErrConfigInvalid, "poll.interval must be positive, got %s", c.Poll.Interval).
			WithDetail("key", "poll.interval")
	}
	if c.Master.Timeout < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "master.timeout must not be negative, got %s", c.Master.Timeout).
			WithDetail("key", "master.timeout")
	}
	if _, err := c.MasterURL(); err != nil {
		return err
	}
	return nil
}

// MasterURL returns the master's HTTP base URL. A disco://host address is
// rewritten to http://host:8989.
func (c *Config) MasterURL() (string, error) {
	u, err := url.Parse(c.Master.URL)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrConfigInvalid, "invalid master.url %q", c.Master.URL).
			WithDetail("key", "master.url")
	}

	switch u.Scheme {
	case "http", "https":
	case "disco":
		u.Scheme = "http"
		if u.Port() == "" {
			u.Host = net.JoinHostPort(u.Hostname(), discoDefaultPort)
		}
	default:
		return "", errors.Newf(errors.ErrConfigInvalid, "master.url %q must use http, https or disco", c.Master.URL).
			WithDetail("key", "master.url")
	}
	if u.Host == "" {
		return "", errors.Newf(errors.ErrConfigInvalid, "master.url %q has no host", c.Master.URL).
			WithDetail("key", "master.url")
	}
	return u.String(), nil
}
