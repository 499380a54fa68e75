package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/karitora/pitchvox/internal/audio"
	"github.com/karitora/pitchvox/internal/config"
	"github.com/karitora/pitchvox/internal/control"
	"github.com/karitora/pitchvox/internal/frame"
	"github.com/karitora/pitchvox/internal/hotkey"
	"github.com/karitora/pitchvox/internal/logger"
	"github.com/karitora/pitchvox/internal/pipeline"
	"github.com/karitora/pitchvox/internal/pitch"
)

const version = "0.1.0"

// App holds all application state
type App struct {
	logger    *logger.Logger
	config    *config.Config
	driver    audio.Driver
	control   *pitch.Control
	pipe      *pipeline.Pipeline
	hotkeyMgr *hotkey.Manager
}

func main() {
	configPath := flag.String("config", "", "path to config file (default: "+config.GetConfigPath()+")")
	listDevices := flag.Bool("devices", false, "list audio devices and exit")
	flag.Parse()

	app := &App{}

	var err error
	app.logger, err = logger.New(logger.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer app.logger.Close()

	app.logger.Info("pitchvox v%s starting", version)

	path := *configPath
	if path == "" {
		path = config.GetConfigPath()
	}
	app.config, err = config.Load(path)
	if err != nil {
		app.logger.Error("Failed to load config: %v", err)
		os.Exit(1)
	}
	if err := app.config.Validate(); err != nil {
		app.logger.Error("Invalid config: %v", err)
		os.Exit(1)
	}
	app.logger.Debug("Config loaded from %s", path)

	// Level name already validated above
	if level, err := logger.ParseLevel(app.config.LogLevel); err == nil {
		app.logger.SetLevel(level)
	}

	app.driver, err = audio.NewPortAudioDriver()
	if err != nil {
		app.logger.Error("Failed to create audio driver: %v", err)
		os.Exit(1)
	}
	defer app.driver.Close()

	if *listDevices {
		app.printDevices()
		return
	}

	if err := app.run(); err != nil {
		app.logger.Error("%v", err)
		os.Exit(1)
	}
}

// run wires the pipeline to the audio driver and blocks on the command
// loop until the user quits or a termination signal arrives. Any error it
// returns is a startup failure; faults after startup are logged and the
// streams keep running.
func (a *App) run() error {
	var err error
	a.control, err = pitch.NewControlWithPresets(
		a.config.LowFactor, a.config.NormalFactor, a.config.HighFactor)
	if err != nil {
		return fmt.Errorf("invalid pitch presets: %w", err)
	}

	a.pipe = pipeline.New(frame.New(a.config.FrameSize), a.control)

	audioConfig := audio.Config{
		InputDeviceID:   a.config.InputDeviceID,
		OutputDeviceID:  a.config.OutputDeviceID,
		SampleRate:      a.config.SampleRate,
		Channels:        a.config.Channels,
		FramesPerBuffer: a.config.FramesPerBuffer,
		Latency:         audio.LowLatency,
	}
	callbacks := audio.Callbacks{
		OnCapture:  a.pipe.Capture,
		OnPlayback: a.pipe.Playback,
		OnFault: func(err error) {
			a.logger.Warn("Stream fault: %v", err)
		},
	}

	if err := a.driver.Initialize(audioConfig, callbacks); err != nil {
		return fmt.Errorf("failed to initialize audio: %w", err)
	}
	if err := a.driver.Start(); err != nil {
		return fmt.Errorf("failed to start audio streams: %w", err)
	}
	a.logger.Info("Audio streams started")

	if a.config.HotkeysEnabled {
		a.hotkeyMgr = hotkey.New()
		if err := a.hotkeyMgr.Register(); err != nil {
			a.logger.Warn("Hotkey registration failed: %v", err)
			a.hotkeyMgr = nil
		} else {
			a.logger.Info("Preset hotkeys registered (Ctrl+Shift+1/2/0)")
			go a.hotkeyEventLoop()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	replDone := make(chan error, 1)
	go func() {
		replDone <- control.Loop(os.Stdin, os.Stdout, a.control)
	}()

	select {
	case sig := <-sigChan:
		a.logger.Info("Received signal: %v", sig)
	case err := <-replDone:
		if err != nil {
			a.shutdown()
			return fmt.Errorf("command loop failed: %w", err)
		}
	}

	a.shutdown()
	return nil
}

// hotkeyEventLoop applies presets selected through global shortcuts
func (a *App) hotkeyEventLoop() {
	for event := range a.hotkeyMgr.Events() {
		if err := a.control.SetPreset(event.Preset); err != nil {
			a.logger.Error("Hotkey preset failed: %v", err)
			continue
		}
		a.logger.Info("Hotkey: pitch set to %s", event.Preset)
	}
}

// shutdown stops the streams and releases the hotkeys
func (a *App) shutdown() {
	if a.hotkeyMgr != nil {
		if err := a.hotkeyMgr.Close(); err != nil {
			a.logger.Warn("Failed to close hotkeys: %v", err)
		}
	}

	if err := a.driver.Stop(); err != nil {
		a.logger.Warn("Failed to stop audio streams: %v", err)
	}

	a.logger.Info("pitchvox stopped")
}

// printDevices lists the audio devices visible to the driver
func (a *App) printDevices() {
	devices, err := a.driver.ListDevices()
	if err != nil {
		a.logger.Error("Failed to list devices: %v", err)
		os.Exit(1)
	}

	for _, dev := range devices {
		marks := ""
		if dev.IsDefaultInput {
			marks += " [default input]"
		}
		if dev.IsDefaultOutput {
			marks += " [default output]"
		}
		fmt.Printf("%3d: %s (in: %d, out: %d)%s\n",
			dev.ID, dev.Name, dev.MaxInputChannels, dev.MaxOutputChannels, marks)
	}
}
