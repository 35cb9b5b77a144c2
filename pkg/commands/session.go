package commands

import (
	"time"

	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/config"
	"github.com/majdbaddour/timeline/pkg/control"
	"github.com/majdbaddour/timeline/pkg/logging"
	"github.com/majdbaddour/timeline/pkg/store"
	"github.com/majdbaddour/timeline/pkg/window"
)

// session is what every command works against: the configuration, the
// persisted window and a controller over it.
type session struct {
	cfg     *config.Config
	disk    *store.Disk
	table   *calendar.Table
	ctrl    *control.Controller
	now     time.Time
	cleanup func()
}

func loadSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cleanup, err := logging.Setup(cfg.Debug)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	disk, err := store.Load(cfg, window.Default(now, cfg.Location))
	if err != nil {
		cleanup()
		return nil, err
	}
	table := calendar.New(cfg.Location)
	return &session{
		cfg:     cfg,
		disk:    disk,
		table:   table,
		ctrl:    control.New(disk, table, cfg.Width, control.WithZoomFactor(cfg.ZoomFactor)),
		now:     now,
		cleanup: cleanup,
	}, nil
}

// width is the flag value when set, otherwise the configured width.
func (s *session) width(flag float64) float64 {
	if flag > 0 {
		return flag
	}
	return s.cfg.Width
}
