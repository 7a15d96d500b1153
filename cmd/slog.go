package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// configureLogging installs the default logger. Development, or an explicit
// debug level, gets colored tint output with cleaned source paths; anything
// else logs JSON.
func configureLogging(environment, level string) error {
	handler, err := newLogHandler(os.Stdout, environment, level)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

func newLogHandler(w io.Writer, environment, level string) (slog.Handler, error) {
	dev := environment == "development"

	logLevel := slog.LevelInfo
	if dev {
		logLevel = slog.LevelDebug
	}
	if level != "" {
		if err := logLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level: %s", level)
		}
	}

	if !dev && logLevel != slog.LevelDebug {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}), nil
	}

	modulePrefix := getModulePrefix()
	replacer := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.SourceKey {
			if source, ok := a.Value.Any().(*slog.Source); ok {
				source.File = cleanSourcePath(source.File, modulePrefix)
			}
		}
		if err, ok := a.Value.Any().(error); ok {
			aErr := tint.Err(err)
			aErr.Key = a.Key
			return aErr
		}
		return a
	}

	return tint.NewHandler(w, &tint.Options{
		Level:       logLevel,
		TimeFormat:  time.TimeOnly,
		ReplaceAttr: replacer,
		AddSource:   true,
	}), nil
}

// getModulePrefix returns "/<last module path element>/" from the build
// info, falling back to the working directory name.
func getModulePrefix() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path == "" {
		if wd, err := os.Getwd(); err == nil {
			return "/" + filepath.Base(wd) + "/"
		}
		return "/academy/"
	}

	parts := strings.Split(info.Main.Path, "/")
	return "/" + parts[len(parts)-1] + "/"
}

// cleanSourcePath keeps the part of filePath after the module directory.
func cleanSourcePath(filePath, modulePrefix string) string {
	if _, rest, ok := strings.Cut(filePath, modulePrefix); ok {
		return rest
	}

	cleaned := filePath
	if idx := strings.LastIndex(cleaned, "/go/src/"); idx != -1 {
		cleaned = cleaned[idx+8:]
	} else if idx := strings.LastIndex(cleaned, "/src/"); idx != -1 {
		cleaned = cleaned[idx+5:]
	}
	return cleaned
}
