package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"go.trai.ch/inject/internal/core/domain"
	"go.trai.ch/zerr"
)

// configPathEnv names the variable that points at an explicit settings file.
const configPathEnv = domain.EnvPrefix + "_CONFIG"

// constraintSeparator splits list settings given as a single string, such as
// INJECT_EXTRA_CONSTRAINTS. Commas and spaces are part of constraint syntax.
const constraintSeparator = ";"

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Manager: string(domain.Mamba),
		Interpreter: InterpreterSettings{
			Name:   domain.DefaultInterpreterName,
			Binary: domain.DefaultInterpreterBinary,
		},
		ModuleVar: domain.DefaultModuleVar,
	}
}

// LoadSettings reads settings from defaults, the settings file and INJECT_* variables,
// in increasing priority. The settings file is INJECT_CONFIG if set, otherwise
// .inject.yaml in cwd when present.
func LoadSettings(cwd string) (*Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("manager", defaults.Manager)
	v.SetDefault("interpreter.name", defaults.Interpreter.Name)
	v.SetDefault("interpreter.version", defaults.Interpreter.Version)
	v.SetDefault("interpreter.binary", defaults.Interpreter.Binary)
	v.SetDefault("module_var", defaults.ModuleVar)
	v.SetDefault("extra_constraints", []string{})
	v.SetDefault("timeout", "0s")

	v.SetEnvPrefix(domain.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	source, err := resolveSettingsFile(cwd)
	if err != nil {
		return nil, err
	}

	if source != "" {
		v.SetConfigFile(source)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			loadErr := zerr.Wrap(domain.ErrConfigLoadFailed, err.Error())
			return nil, zerr.With(loadErr, "path", source)
		}
	}

	var settings Settings
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToListHookFunc(constraintSeparator),
	))
	if err := v.Unmarshal(&settings, hooks); err != nil {
		loadErr := zerr.Wrap(domain.ErrConfigLoadFailed, err.Error())
		return nil, zerr.With(loadErr, "path", source)
	}
	settings.Source = source

	return &settings, nil
}

// stringToListHookFunc splits a string decoded into []string on sep, trimming
// whitespace around each entry and dropping empty ones.
func stringToListHookFunc(sep string) mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeFor[[]string]() {
			return data, nil
		}

		out := []string{}
		for _, part := range strings.Split(data.(string), sep) {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	}
}

func resolveSettingsFile(cwd string) (string, error) {
	if explicit := os.Getenv(configPathEnv); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			loadErr := zerr.Wrap(domain.ErrConfigLoadFailed, "settings file not found")
			loadErr = zerr.With(loadErr, "path", explicit)
			return "", zerr.With(loadErr, "variable", configPathEnv)
		}
		return explicit, nil
	}

	local := filepath.Join(cwd, domain.ConfigFileName)
	if _, err := os.Stat(local); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(domain.ErrConfigLoadFailed, err.Error()), "path", local)
	}
	return local, nil
}

// PackageManager returns the configured package manager.
func (s *Settings) PackageManager() (domain.PackageManager, error) {
	return domain.ParsePackageManager(s.Manager)
}
