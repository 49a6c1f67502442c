package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env"
	"github.com/sstallion/go-hid"
	"go.uber.org/zap"

	"github.com/gz302-tools/gz302ctl/cmd"
	"github.com/gz302-tools/gz302ctl/internal/anim"
	"github.com/gz302-tools/gz302ctl/internal/control"
	"github.com/gz302-tools/gz302ctl/internal/hidraw"
	"github.com/gz302-tools/gz302ctl/internal/logging"
	"github.com/gz302-tools/gz302ctl/internal/notify"
	"github.com/gz302-tools/gz302ctl/internal/power"
	"github.com/gz302-tools/gz302ctl/internal/refresh"
	"github.com/gz302-tools/gz302ctl/internal/screen"
	"github.com/gz302-tools/gz302ctl/internal/settings"
)

var logger = logging.New("main")

type Config struct {
	SettingsPath    string        `env:"GZ302_SETTINGS_PATH" envDefault:"/etc/gz302/rgb.toml"`
	PwrcfgBinary    string        `env:"GZ302_PWRCFG" envDefault:"/usr/local/bin/pwrcfg"`
	RrcfgBinary     string        `env:"GZ302_RRCFG" envDefault:"/usr/local/bin/rrcfg"`
	Notifications   bool          `env:"GZ302_NOTIFICATIONS" envDefault:"true"`
	ScreenNumber    int           `env:"GZ302_SCREEN_NUMBER" envDefault:"0"`
	AmbientInterval time.Duration `env:"GZ302_AMBIENT_INTERVAL" envDefault:"80ms"`
	StopTimeout     time.Duration `env:"GZ302_STOP_TIMEOUT" envDefault:"1s"`
}

func main() {
	defer logger.Sync()

	var config Config
	if err := env.Parse(&config); err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to parse environment variables")
	}

	if err := hid.Init(); err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to initialize HID subsystem")
	}
	defer hid.Exit()

	sampler := screen.NewSampler(config.ScreenNumber)
	engine := anim.NewEngine(anim.Config{
		Capture:         sampler.Capture,
		AmbientInterval: config.AmbientInterval,
		StopTimeout:     config.StopTimeout,
	})
	store := settings.NewStore(config.SettingsPath)

	service := control.NewService(control.Config{
		Locator:  hidraw.NewLocator(),
		Writer:   hidraw.NewWriter(),
		Engine:   engine,
		Store:    store,
		Notifier: notify.New(config.Notifications),
	})
	defer service.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cmd.New(cmd.Deps{
		Controller: service,
		Settings:   store,
		Power:      power.NewClient(config.PwrcfgBinary),
		Refresh:    refresh.NewClient(config.RrcfgBinary),
	})
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		service.Close()
		logger.Sync()
		os.Exit(1)
	}
}
