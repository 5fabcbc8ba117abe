package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Cron ticks in the background to write stats and reopens a log file on SIGHUP.
type Cron struct {
	signals  chan os.Signal
	interval time.Duration

	flagsServer *FlagsServer
}

func MakeCron(flagsServer *FlagsServer, interval time.Duration) (*Cron, error) {
	return &Cron{
		signals:     make(chan os.Signal, 2),
		interval:    interval,
		flagsServer: flagsServer,
	}, nil
}

func (c *Cron) onSignal(sig os.Signal) {
	logServer.Info(0, "got signal", sig)
	if sig == syscall.SIGHUP {
		if err := logServer.RotateLogFile(); err != nil {
			logServer.Error("could not rotate log file", err)
		} else {
			logServer.Info(0, "log file rotated")
		}
	}
}

// StartCron blocks until ctx is done.
func (c *Cron) StartCron(ctx context.Context) error {
	signal.Notify(c.signals, syscall.SIGHUP)
	defer signal.Stop(c.signals)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-c.signals:
			c.onSignal(sig)
		case <-ticker.C:
			c.flagsServer.Stats.SendToStatsd(c.flagsServer)
		}
	}
}
