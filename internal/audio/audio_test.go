package audio

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.InputDeviceID != -1 {
		t.Errorf("expected default input device ID -1, got %d", config.InputDeviceID)
	}
	if config.OutputDeviceID != -1 {
		t.Errorf("expected default output device ID -1, got %d", config.OutputDeviceID)
	}
	if config.SampleRate != 0 {
		t.Errorf("expected sample rate 0 (device default), got %d", config.SampleRate)
	}
	if config.Channels != 1 {
		t.Errorf("expected 1 channel, got %d", config.Channels)
	}
	if config.FramesPerBuffer != 1024 {
		t.Errorf("expected 1024 frames per buffer, got %d", config.FramesPerBuffer)
	}
	if config.Latency != LowLatency {
		t.Errorf("expected LowLatency, got %v", config.Latency)
	}
}

func TestNewPortAudioDriver(t *testing.T) {
	driver, err := NewPortAudioDriver()
	if err != nil {
		t.Skipf("PortAudio not available: %v", err)
	}
	defer driver.Close()

	if driver == nil {
		t.Fatal("expected non-nil driver")
	}
}

func TestListDevices(t *testing.T) {
	driver, err := NewPortAudioDriver()
	if err != nil {
		t.Skipf("PortAudio not available: %v", err)
	}
	defer driver.Close()

	devices, err := driver.ListDevices()
	if err != nil {
		t.Fatalf("ListDevices failed: %v", err)
	}
	if len(devices) == 0 {
		t.Skip("no audio devices available")
	}

	for _, dev := range devices {
		t.Logf("device %d: %s (in: %d, out: %d, default in: %v, default out: %v)",
			dev.ID, dev.Name, dev.MaxInputChannels, dev.MaxOutputChannels,
			dev.IsDefaultInput, dev.IsDefaultOutput)
	}
}

func TestInitializeRequiresCallbacks(t *testing.T) {
	driver, err := NewPortAudioDriver()
	if err != nil {
		t.Skipf("PortAudio not available: %v", err)
	}
	defer driver.Close()

	if err := driver.Initialize(DefaultConfig(), Callbacks{}); err == nil {
		t.Error("Initialize should fail without capture and playback callbacks")
	}
}

func TestStreamLifecycle(t *testing.T) {
	driver, err := NewPortAudioDriver()
	if err != nil {
		t.Skipf("PortAudio not available: %v", err)
	}
	defer driver.Close()

	cb := Callbacks{
		OnCapture:  func(in []float32) {},
		OnPlayback: func(out []float32) {},
	}

	if err := driver.Initialize(DefaultConfig(), cb); err != nil {
		t.Skipf("no usable default devices: %v", err)
	}

	if err := driver.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := driver.Start(); err == nil {
		t.Error("Start should fail while running")
	}
	if err := driver.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if err := driver.Stop(); err == nil {
		t.Error("Stop should fail when not running")
	}
}
