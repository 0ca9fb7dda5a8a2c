package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Variables set by the serverless host. They sit below APP_* overrides.
const (
	hostPortEnv    = "PORT"
	hostProjectEnv = "GOOGLE_CLOUD_PROJECT"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	getenv    func(string) string
}

// WithConfigDir sets the directory holding the YAML files. Defaults to
// "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the configuration for profile from five layers, later layers
// winning:
//
//  1. built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. host variables: PORT sets server.port; GOOGLE_CLOUD_PROJECT fills
//     store.project_id and push.project_id when they are still empty
//  5. APP_* variables, matched against known keys so that
//     APP_EVENTS_MAX_CONCURRENCY maps to events.max_concurrency and
//     APP_PUSH_CLIENT_CIRCUIT_BREAKER_MAX_FAILURES to
//     push.client.circuit_breaker.max_failures
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir, getenv: os.Getenv}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	host, err := hostOverrides(k, o.getenv)
	if err != nil {
		return nil, err
	}
	if err := k.Load(confmap.Provider(host, "."), nil); err != nil {
		return nil, fmt.Errorf("loading host variables: %w", err)
	}

	if err := k.Load(appEnvProvider(k.Keys()), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// hostOverrides maps the serverless host's conventional variables onto
// config keys.
func hostOverrides(k *koanf.Koanf, getenv func(string) string) (map[string]any, error) {
	out := map[string]any{}

	if v := getenv(hostPortEnv); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number, got %q", hostPortEnv, v)
		}
		out["server.port"] = port
	}

	if project := getenv(hostProjectEnv); project != "" {
		for _, key := range []string{"store.project_id", "push.project_id"} {
			if k.String(key) == "" {
				out[key] = project
			}
		}
	}
	return out, nil
}

// appEnvProvider reads APP_* variables. Known keys are matched first so an
// underscore inside a field name is not mistaken for nesting.
func appEnvProvider(keys []string) *env.Env {
	lookup := buildEnvLookup(keys)
	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if koanfKey, ok := lookup[key]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	})
}

// validateProfile rejects empty names and anything that could escape the
// config directory.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup maps "server_read_timeout" style keys back to
// "server.read_timeout".
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
