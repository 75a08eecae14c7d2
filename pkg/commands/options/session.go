package options

import (
	"context"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/config"
	"tableflip.dev/todo/pkg/logging"
)

// Session is the config, logger and task service shared by every runner
// started from one command.
type Session struct {
	Config  *config.Config
	Service *app.Service

	closeLog func() error
}

// OpenSession loads config and opens the debug log when it is enabled.
func OpenSession(ctx context.Context) (*Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	s := &Session{Config: cfg}

	logger := logging.Discard()
	if cfg.LogEnabled {
		l, closeFn, err := logging.Setup(cfg.LogPath, cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		logger, s.closeLog = l, closeFn
	}
	s.Service = app.New(logger)
	logger.DebugContext(ctx, "session opened", "log_path", cfg.LogPath, "start_tab", cfg.StartTab.String())
	return s, nil
}

// Close flushes and closes the debug log.
func (s *Session) Close() error {
	if s == nil || s.closeLog == nil {
		return nil
	}
	return s.closeLog()
}
