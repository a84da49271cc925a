package settings

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"cargeo.dev/cargeo/params"
	"cargeo.dev/cargeo/utils"
)

var (
	Settings = NewSettings()
)

var ErrUnknownSetting = errors.New("unknown setting")

type CargeoSettings struct {
	LogLevel        string `json:"log_level"`
	Decimals        int    `json:"decimals"`
	BlankUnresolved bool   `json:"blank_unresolved"`
}

// Keys lists the settings that can be changed with Set, in display order.
var Keys = []string{"log_level", "decimals", "blank_unresolved"}

func NewSettings() CargeoSettings {
	s := CargeoSettings{}
	s.Default()
	return s
}

func (s *CargeoSettings) Default() {
	s.LogLevel = "error"
	s.Decimals = DEFAULT_DECIMALS
	s.BlankUnresolved = false
}

func (s *CargeoSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.CARGEO_SETTINGS)
	if err != nil {
		utils.Logde(err)
		s.setLogLevel()
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(errors.Wrap(err, "could not parse stored settings"))
		s.Default()
		s.setLogLevel()
		return false
	}
	s.clampDecimals()
	s.setLogLevel()

	return true
}

func (s *CargeoSettings) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode settings")
	}
	err = params.PutParam(params.CARGEO_SETTINGS, data)
	if err != nil {
		return errors.Wrap(err, "could not save settings")
	}
	return nil
}

// Reset removes the stored settings and goes back to defaults.
func (s *CargeoSettings) Reset() error {
	s.Default()
	s.setLogLevel()
	return errors.Wrap(params.RemoveParam(params.CARGEO_SETTINGS), "could not reset settings")
}

func (s *CargeoSettings) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch strings.ToLower(key) {
	case "log_level":
		level := strings.ToLower(value)
		switch level {
		case "debug", "info", "warn", "error":
		default:
			return errors.Errorf("invalid log level %q", value)
		}
		s.LogLevel = level
		s.setLogLevel()
	case "decimals":
		decimals, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "invalid decimals %q", value)
		}
		if decimals < 0 || decimals > MAX_DECIMALS {
			return errors.Errorf("decimals must be between 0 and %d", MAX_DECIMALS)
		}
		s.Decimals = decimals
	case "blank_unresolved":
		blank, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "invalid blank_unresolved %q", value)
		}
		s.BlankUnresolved = blank
	default:
		return errors.Wrap(ErrUnknownSetting, key)
	}
	return nil
}

func (s *CargeoSettings) Get(key string) (string, error) {
	switch strings.ToLower(key) {
	case "log_level":
		return s.LogLevel, nil
	case "decimals":
		return strconv.Itoa(s.Decimals), nil
	case "blank_unresolved":
		return strconv.FormatBool(s.BlankUnresolved), nil
	}
	return "", errors.Wrap(ErrUnknownSetting, key)
}

func (s *CargeoSettings) String() string {
	var b strings.Builder
	for _, key := range Keys {
		value, _ := s.Get(key)
		fmt.Fprintf(&b, "%s = %s\n", key, value)
	}
	return b.String()
}

// ApplyLogLevel switches the process log level without storing it.
func ApplyLogLevel(level string) {
	slog.SetLogLoggerLevel(parseLogLevel(level))
}

func (s *CargeoSettings) setLogLevel() {
	ApplyLogLevel(s.LogLevel)
}

func (s *CargeoSettings) clampDecimals() {
	if s.Decimals < 0 {
		s.Decimals = 0
	}
	if s.Decimals > MAX_DECIMALS {
		s.Decimals = MAX_DECIMALS
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
