package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/discomon/pkg/disco"
	"github.com/arthur-debert/discomon/pkg/errors"
	"github.com/arthur-debert/discomon/pkg/logging"
	"github.com/arthur-debert/discomon/pkg/ui"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes DISCOMON_<SECTION>_<KEY> variables
	EnvPrefix = "DISCOMON_"

	legacyEnvPrefix = "DISCO_"
)

// legacyEnvKeys maps the Disco client's own variables onto discomon keys
var legacyEnvKeys = map[string]string{
	ui.EnvEventsFormat: "events.format",
	"DISCO_MASTER": "master.url",
}

// configFileNames are searched in the XDG config directories
var configFileNames = []string{
	"discomon/config.toml",
	"discomon/config.yaml",
	"discomon/config.yml",
}

// LoadOptions controls Load
type LoadOptions struct {
	// File is an explicit config file; it must exist when set
	File string

	// Overrides are applied last, keyed by dotted path ("events.format")
	Overrides map[string]interface{}
}

// Load builds the configuration from defaults, config file, environment and
// overrides, later sources winning.
func Load(opts LoadOptions) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	path, err := resolveConfigFile(opts.File)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment, the Disco variables first so DISCOMON_ ones win
	if err := k.Load(env.Provider(legacyEnvPrefix, ".", legacyEnvKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read environment")
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read environment")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if cfg.Master.URL == "" {
		cfg.Master.URL = disco.DefaultMasterURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveConfigFile returns the explicit file, or the first config file found
// in the XDG config directories, or "" when there is none.
func resolveConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}
	for _, name := range configFileNames {
		if path, err := xdg.SearchConfigFile(name); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config file type %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

func legacyEnvKey(name string) string {
	return legacyEnvKeys[name]
}

// envKey maps DISCOMON_POLL_INTERVAL to poll.interval and
// DISCOMON_WATCH_STOP_ON_FINISH to watch.stop_on_finish.
func envKey(name string) string {
	rest := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	section, key, ok := strings.Cut(rest, "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return section + "." + key
}
