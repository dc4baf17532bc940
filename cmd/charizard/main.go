// Command charizard boots the kernel on the host terminal.
//
// The terminal stands in for the VGA text buffer and the PS/2 keyboard.
// Logs go to a file because the screen belongs to the shell. Ctrl-C
// powers off.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/SimonOneNineEight/charizardOS/hosted"
	"github.com/SimonOneNineEight/charizardOS/internal/config"
	"github.com/SimonOneNineEight/charizardOS/internal/logging"
	"github.com/SimonOneNineEight/charizardOS/internal/metrics"
	"github.com/SimonOneNineEight/charizardOS/kernel"
	"github.com/SimonOneNineEight/charizardOS/terminal"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("configuration error: %v", err)
	}

	if err := logging.Init(logging.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.Path,
	}); err != nil {
		fatal("logging init error: %v", err)
	}
	defer logging.Sync()

	log := logging.L()
	log.Info("charizard starting",
		zap.String("config", *configPath),
		zap.String("metrics", cfg.Metrics.Addr))

	if cfg.Metrics.Addr != "" {
		metricsServer := &http.Server{
			Addr:    cfg.Metrics.Addr,
			Handler: metrics.Handler(),
		}
		go func() {
			log.Info("metrics server listening", zap.String("addr", cfg.Metrics.Addr))
			if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
				log.Error("metrics server error", zap.Error(err))
			}
		}()
		defer metricsServer.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal("terminal error: %v", err)
	}
	if err := screen.Init(); err != nil {
		fatal("terminal init error: %v", err)
	}
	if w, h := screen.Size(); w < terminal.VGAWidth || h < terminal.VGAHeight {
		log.Warn("terminal smaller than the text screen",
			zap.Int("width", w), zap.Int("height", h))
	}

	display := hosted.NewDisplay(screen, cfg.Screen.Foreground, cfg.Screen.Background)
	keys := hosted.NewKeySource(logging.Named("keysource"))

	k := kernel.New(kernel.Hardware{
		Cells:    display,
		Ports:    display,
		Scancode: keys,
	}, kernel.Config{
		Prompt:       cfg.Shell.Prompt,
		ClearOnStart: cfg.Screen.ClearOnStart,
		Banner:       cfg.Shell.Banner,
	}, log)

	go k.ServeInterrupts(keys.Interrupts())
	go k.Main()

	// Fini makes PollEvent return nil, which ends the loop below.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("signal received, shutting down")
		screen.Fini()
	}()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			shutdown(log)
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				screen.Fini()
				shutdown(log)
				return
			}
			keys.HandleEvent(ev)
		}
	}
}

func shutdown(log *zap.Logger) {
	log.Info("charizard stopped")
	color.New(color.FgGreen).Fprintln(os.Stderr, "charizard: powered off")
}

func fatal(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "charizard: %s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
