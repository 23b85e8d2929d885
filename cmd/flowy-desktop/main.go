package main

import (
	"embed"
	"os"
	goruntime "runtime"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/lyeka/flowy/internal/config"
	"github.com/lyeka/flowy/internal/devtools"
	"github.com/lyeka/flowy/internal/logging"
	"github.com/lyeka/flowy/internal/shortcut/native"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	store := config.NewManager()
	settings, err := store.Load()
	level, format := logDefaults(devtools.Enabled(), settings.Log.Level)
	if initErr := logging.Init(logging.Config{Level: level, Format: format}); initErr != nil {
		println("Error: logging:", initErr.Error())
	}
	if err != nil {
		logging.L().Warn("could not read settings, using defaults", logging.String("path", store.Path()), logging.Err(err))
	} else {
		logging.L().Debug("settings loaded", logging.String("path", store.Path()))
	}

	// Create an instance of the app structure
	app := NewApp(settings, store, native.Bind)

	err = wails.Run(&options.App{
		Title:  "Flowy",
		Width:  1200,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Menu:             devtools.ApplicationMenu(goruntime.GOOS, devtools.Enabled(), app.host),
		Bind: []interface{}{
			app,
		},
		ErrorFormatter:     formatError,
		Logger:             logging.NewWailsLogger(nil),
		LogLevel:           wailsLogLevel(level),
		LogLevelProduction: logger.ERROR,
		Debug:              debugOptions(devtools.Enabled()),
	})

	if err != nil {
		logging.L().Error("application exited with error", logging.Err(err))
		_ = logging.Sync()
		os.Exit(1)
	}
	if err := app.startupError(); err != nil {
		_ = logging.Sync()
		os.Exit(1)
	}
}

// logDefaults picks the log level and format for this build; a configured
// level wins over the build default.
func logDefaults(debug bool, configured string) (level, format string) {
	level, format = "info", "json"
	if debug {
		level, format = "debug", "console"
	}
	if configured != "" {
		level = configured
	}
	return level, format
}

// debugOptions opens the webview inspector on startup in debug builds.
func debugOptions(debug bool) options.Debug {
	return options.Debug{OpenInspectorOnStartup: debug}
}

func wailsLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.DEBUG
	case "warn":
		return logger.WARNING
	case "error":
		return logger.ERROR
	default:
		return logger.INFO
	}
}
