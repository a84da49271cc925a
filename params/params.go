package params

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

const PARAMS_PATH_ENV = "CARGEO_PARAMS_PATH"

var (
	ParamsPath string = GetParamsPath()
)

// Params
const (
	CARGEO_SETTINGS = "CargeoSettings"
)

var errLockTimeout = errors.New("could not obtain lock")

func GetParamsPath() string {
	if path := os.Getenv(PARAMS_PATH_ENV); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		slog.Warn("could not find user config directory", "error", err)
		return filepath.Join(".", "params")
	}
	return filepath.Join(dir, "cargeo", "params")
}

// Exists reports whether the given file or directory exists.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(err, "could not check param file stats")
}

func EnsureParamDirectories() error {
	err := os.MkdirAll(ParamsPath, 0o775)
	if err != nil {
		return errors.Wrapf(err, "could not make params directory %s", ParamsPath)
	}
	return nil
}

func GetParams() ([]string, error) {
	files, err := os.ReadDir(ParamsPath)
	if err != nil {
		return nil, errors.Wrap(err, "could not read params directory")
	}

	paramFiles := []string{}
	for _, file := range files {
		name := file.Name()
		if file.Type().IsRegular() && name[0] != '.' {
			paramFiles = append(paramFiles, name)
		}
	}
	sort.Strings(paramFiles)

	return paramFiles, nil
}

func ParamPath(name string) string {
	return filepath.Join(ParamsPath, name)
}

func GetParam(name string) ([]byte, error) {
	data, err := os.ReadFile(ParamPath(name))
	if err != nil {
		return nil, errors.Wrapf(err, "could not read param %s", name)
	}
	return data, nil
}

func PutParam(name string, data []byte) error {
	if err := EnsureParamDirectories(); err != nil {
		return err
	}
	path := ParamPath(name)
	file, err := os.CreateTemp(ParamsPath, ".tmp_value_"+name)
	if err != nil {
		return errors.Wrap(err, "could not create temp param file")
	}
	tmpName := file.Name()
	defer os.Remove(tmpName)
	defer file.Close()

	_, err = file.Write(data)
	if err != nil {
		return errors.Wrap(err, "could not write data to temp param file")
	}

	err = file.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync temp param file")
	}

	unlock, err := lockParams()
	if err != nil {
		return err
	}
	defer unlock()

	err = os.Rename(tmpName, path)
	if err != nil {
		return errors.Wrap(err, "could not move temp param file to persistent location")
	}

	return syncParamsDir()
}

func RemoveParam(name string) error {
	exists, err := Exists(ParamsPath)
	if err != nil || !exists {
		return err
	}

	unlock, err := lockParams()
	if err != nil {
		return err
	}
	defer unlock()

	err = os.Remove(ParamPath(name))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "could not remove param %s", name)
	}

	return syncParamsDir()
}

// lockParams takes the params directory lock. A lock file left behind by a
// crashed writer is force removed after 30 attempts.
func lockParams() (unlock func(), err error) {
	lockPath := filepath.Join(ParamsPath, ".lock")
	fileLock := flock.New(lockPath)

	retries := 0
	for {
		locked, err := fileLock.TryLock()
		if err != nil {
			return nil, errors.Wrap(err, "could not try locking params directory")
		}
		if locked {
			break
		}
		retries += 1
		if retries > 30 {
			// try to force the lock to be removed
			if err := os.Remove(lockPath); err != nil {
				slog.Debug("failed to force delete params lock", "error", err)
			}
		}
		if retries > 50 {
			return nil, errLockTimeout
		}
		// if we didn't obtain the lock let's try again after a short delay
		time.Sleep(1 * time.Millisecond)
	}

	return func() {
		if err := fileLock.Unlock(); err != nil {
			slog.Error("could not unlock params directory", "error", err)
		}
		if err := os.Remove(lockPath); err != nil && !os.IsNotExist(err) {
			slog.Error("could not remove params lock file", "error", err)
		}
	}, nil
}

func syncParamsDir() error {
	directory, err := os.Open(ParamsPath)
	if err != nil {
		return errors.Wrap(err, "could not open params directory")
	}
	defer directory.Close()

	err = directory.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync params directory")
	}
	return nil
}
