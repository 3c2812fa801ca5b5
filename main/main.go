// Command armsim drives the arm around a scripted sweep, streaming joint
// commands to the controller over a serial port (or nowhere, with no port).
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adammck/arm"
	"github.com/adammck/arm/components/gripper"
	"github.com/adammck/arm/components/sender"
	"github.com/adammck/arm/components/sweep"
	"github.com/adammck/arm/components/tracker"
	"github.com/adammck/arm/config"
	fakeserial "github.com/adammck/arm/fake/serial"
	"github.com/adammck/arm/ik"
	"github.com/benbjohnson/clock"
	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

const (
	flagConfig   = "config"
	flagPort     = "port"
	flagBaud     = "baud"
	flagFPS      = "fps"
	flagDuration = "duration"
	flagDebug    = "debug"
)

func main() {
	app := &cli.App{
		Name:  "armsim",
		Usage: "sweep the arm around and stream joint commands to it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.StringFlag{
				Name:  flagPort,
				Usage: "the serial port path, or empty to discard commands",
			},
			&cli.UintFlag{
				Name:  flagBaud,
				Value: 115200,
				Usage: "the serial port baud rate",
			},
			&cli.IntFlag{
				Name:  flagFPS,
				Usage: "ticks per second, overriding the config",
			},
			&cli.DurationFlag{
				Name:  flagDuration,
				Usage: "shut down after this long, or zero to run until interrupted",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logrus.SetLevel(logrus.DebugLevel)
			}

			return nil
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String(flagConfig); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
	}

	if c.IsSet(flagFPS) {
		cfg.FPS = c.Int(flagFPS)
		if cfg.FPS <= 0 {
			return errors.Errorf("fps must be positive, got %d", cfg.FPS)
		}
	}

	o, err := cfg.Overrides()
	if err != nil {
		return err
	}

	solver, err := ik.New(o)
	if err != nil {
		return err
	}

	port, err := openPort(c.String(flagPort), c.Uint(flagBaud))
	if err != nil {
		return err
	}
	defer port.Close()

	a := arm.New(arm.State{Target: cfg.Home})

	// Order matters: each component reads what the previous ones wrote.
	a.Add(sweep.New(cfg.Sweep.Center, cfg.Sweep.Radius, cfg.Sweep.Period, cfg.Sweep.Actuation))
	a.Add(tracker.New(solver, cfg.Home))
	a.Add(gripper.New(cfg.Gripper.Linkage()))
	a.Add(sender.New(port, cfg.CommandInterval))

	log.Info("booting components")
	if err := a.Boot(); err != nil {
		return errors.Wrap(err, "booting")
	}

	clk := clock.New()
	g, ctx := errgroup.WithContext(c.Context)
	ctx, cancel := context.WithCancel(ctx)

	g.Go(func() error {
		defer cancel()
		log.Infof("running at %d fps", cfg.FPS)
		return a.Run(ctx, clk, cfg.FPS)
	})

	// Catch both SIGINT (ctrl+c) and SIGTERM (kill/systemd), to give the
	// components one last tick to tell the controller we're stopping.
	g.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)

		var timeout <-chan time.Time
		if d := c.Duration(flagDuration); d > 0 {
			timeout = clk.After(d)
		}

		select {
		case s := <-sig:
			log.Infof("caught %s, shutting down", s)
		case <-timeout:
			log.Info("time's up, shutting down")
		case <-ctx.Done():
			return nil
		}

		a.Shutdown()
		return nil
	})

	return g.Wait()
}

// openPort opens the serial port at path. With no path, commands are written
// to a fake port and only show up in the debug log.
func openPort(path string, baud uint) (io.ReadWriteCloser, error) {
	if path == "" {
		log.Warn("no serial port given, commands will be discarded")
		return fakeserial.New(), nil
	}

	log.Infof("opening serial port %s", path)
	port, err := serial.Open(serial.OpenOptions{
		PortName:              path,
		BaudRate:              baud,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       0,
		InterCharacterTimeout: 100,
	})
	if err != nil {
		return nil, errors.Wrap(err, "opening serial port")
	}

	return port, nil
}
