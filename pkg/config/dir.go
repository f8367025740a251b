package lconfig

import (
	"io"
	"io/fs"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ConfigDir is a directory holding one file per variable, the way mounted
// secrets and config maps are laid out.
type ConfigDir struct {
	dirPath string
	fs      afero.Fs
}

func NewConfigDir(dirPath string) (*ConfigDir, error) {
	return NewConfigDirFs(afero.NewOsFs(), dirPath)
}

func NewConfigDirFs(base afero.Fs, dirPath string) (*ConfigDir, error) {
	if dirPath == "" {
		return nil, errors.New("empty config dir path")
	}
	configDir := &ConfigDir{
		dirPath: dirPath,
		fs:      afero.NewBasePathFs(base, dirPath),
	}

	stat, err := configDir.fs.Stat(".")
	if err != nil {
		return nil, errors.Wrapf(err, "config dir %s", dirPath)
	}
	if !stat.IsDir() {
		return nil, errors.Errorf("config dir path %s is not a directory", dirPath)
	}
	return configDir, nil
}

func (config *ConfigDir) EnvironmentMap() (map[string]string, error) {
	envMap := make(map[string]string)

	err := afero.Walk(config.fs, ".", func(path string, fileInfo fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fileInfo.IsDir() {
			return nil
		}
		name := fileInfo.Name()
		if _, alreadyExists := envMap[name]; alreadyExists {
			return errors.Errorf("duplicate configuration value %s", name)
		}
		file, err := config.fs.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		contents, err := io.ReadAll(file)
		if err != nil {
			return err
		}
		envMap[name] = strings.TrimSpace(string(contents))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return envMap, nil
}
