package lconfig

import (
	"encoding/json"
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
)

var parseFuncs = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(map[string]string{}): env.ParserFunc(func(v string) (interface{}, error) {
		ret := make(map[string]string)
		err := json.Unmarshal([]byte(v), &ret)
		return ret, err
	}),
}

// Parse fills v from the environment. When CONFIG_DIR is set, every regular
// file in it provides a variable named after the file; real environment
// variables take precedence.
func Parse(v interface{}) error {
	return ParseWithFuncs(v, nil)
}

type ParseFuncs map[reflect.Type]env.ParserFunc

func ParseWithFuncs(v interface{}, funcs ParseFuncs) error {
	opts, err := options()
	if err != nil {
		return err
	}

	newFuncs := make(map[reflect.Type]env.ParserFunc)
	for k, v := range parseFuncs {
		newFuncs[k] = v
	}
	for k, v := range funcs {
		newFuncs[k] = v
	}

	return errors.WithStack(env.ParseWithFuncs(v, newFuncs, opts))
}

func options() (env.Options, error) {
	opts := env.Options{}
	configDirPath := os.Getenv("CONFIG_DIR")
	if configDirPath == "" {
		return opts, nil
	}

	configDir, err := NewConfigDir(configDirPath)
	if err != nil {
		return opts, err
	}
	opts.Environment, err = configDir.EnvironmentMap()
	if err != nil {
		return opts, err
	}

	for _, existingEnv := range os.Environ() {
		name, value, _ := strings.Cut(existingEnv, "=")
		opts.Environment[name] = value
	}
	return opts, nil
}
