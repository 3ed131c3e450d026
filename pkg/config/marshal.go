package config

import (
	"bytes"

	"github.com/arthur-debert/discomon/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported Marshal formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// fileView mirrors Config with durations as strings, the form config files use
type fileView struct {
	Events struct {
		Format string `toml:"format" yaml:"format"`
	} `toml:"events" yaml:"events"`
	Poll struct {
		Interval string `toml:"interval" yaml:"interval"`
	} `toml:"poll" yaml:"poll"`
	Master struct {
		URL     string `toml:"url" yaml:"url"`
		Timeout string `toml:"timeout" yaml:"timeout"`
	} `toml:"master" yaml:"master"`
	Watch struct {
		StopOnFinish bool `toml:"stop_on_finish" yaml:"stop_on_finish"`
	} `toml:"watch" yaml:"watch"`
}

func (c *Config) view() fileView {
	var v fileView
	v.Events.Format = c.Events.Format
	v.Poll.Interval = c.Poll.Interval.String()
	v.Master.URL = c.Master.URL
	v.Master.Timeout = c.Master.Timeout.String()
	v.Watch.StopOnFinish = c.Watch.StopOnFinish
	return v
}

// Marshal renders the configuration as a config file in the given format
func (c *Config) Marshal(format string) ([]byte, error) {
	v := c.view()

	switch format {
	case FormatTOML, "":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode config as toml")
		}
		return buf.Bytes(), nil
	case FormatYAML, "yml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode config as yaml")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported config format %q", format).
			WithDetail("format", format)
	}
}
