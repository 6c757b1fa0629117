package shading

import "github.com/gekko3d/shading/logging"

type Logger = logging.Logger

// LoggingModule installs a default logger as a resource.
type LoggingModule struct {
	Prefix string
	Debug  bool
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	logger := logging.NewDefaultLogger(m.Prefix, m.Debug)
	app.addResources(logger)
}

// Logger returns the first Logger resource if present, otherwise a no-op logger.
// Safe to call at any time; never returns nil.
func (app *App) Logger() Logger {
	if app == nil {
		return logging.NewNopLogger()
	}
	for _, r := range app.resources {
		if l, ok := r.(Logger); ok {
			return l
		}
	}
	return logging.NewNopLogger()
}

// appLogger forwards to whichever Logger resource the app holds at call time,
// so modules installed before LoggingModule still log through it.
type appLogger struct {
	app *App
}

func (l appLogger) DebugEnabled() bool { return l.app.Logger().DebugEnabled() }
func (l appLogger) SetDebug(enabled bool) { l.app.Logger().SetDebug(enabled) }
func (l appLogger) Debugf(format string, args ...any) { l.app.Logger().Debugf(format, args...) }
func (l appLogger) Infof(format string, args ...any) { l.app.Logger().Infof(format, args...) }
func (l appLogger) Warnf(format string, args ...any) { l.app.Logger().Warnf(format, args...) }
func (l appLogger) Errorf(format string, args ...any) { l.app.Logger().Errorf(format, args...) }
