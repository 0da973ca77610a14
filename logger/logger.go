package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"
)

const Module = "discord-webhook-relay"

var format = logging.MustStringFormatter(
	`%{color}%{time:2006-01-02 15:04:05.000} %{shortfile} ▶ %{level:.4s}%{color:reset} %{message}`,
)

// Setup installs a stderr backend filtered at the given level (DEBUG, INFO,
// NOTICE, WARNING, ERROR, CRITICAL).
func Setup(level string) error {
	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)

	return nil
}

func New(component string) *logging.Logger {
	return logging.MustGetLogger(Module + "/" + component)
}
