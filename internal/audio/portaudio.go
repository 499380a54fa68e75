package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
)

// PortAudioDriver implements Driver using PortAudio. It opens one input
// and one output stream; the host API schedules their callbacks on its own
// goroutines, independently of each other.
type PortAudioDriver struct {
	config      Config
	callbacks   Callbacks
	inStream    *portaudio.Stream
	outStream   *portaudio.Stream
	mu          sync.Mutex
	running     bool
	initialized bool
}

// NewPortAudioDriver creates a new PortAudio driver
func NewPortAudioDriver() (*PortAudioDriver, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	return &PortAudioDriver{}, nil
}

// ListDevices returns a list of available audio devices
func (d *PortAudioDriver) ListDevices() ([]Device, error) {
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	defaultInput, err := portaudio.DefaultInputDevice()
	if err != nil {
		defaultInput = nil
	}
	defaultOutput, err := portaudio.DefaultOutputDevice()
	if err != nil {
		defaultOutput = nil
	}

	var result []Device
	for i, dev := range devices {
		result = append(result, Device{
			ID:                i,
			Name:              dev.Name,
			IsDefaultInput:    defaultInput != nil && dev.Name == defaultInput.Name,
			IsDefaultOutput:   defaultOutput != nil && dev.Name == defaultOutput.Name,
			MaxInputChannels:  dev.MaxInputChannels,
			MaxOutputChannels: dev.MaxOutputChannels,
		})
	}

	return result, nil
}

// Initialize opens the input and output streams with the given
// configuration and callbacks
func (d *PortAudioDriver) Initialize(config Config, cb Callbacks) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("cannot initialize while streams are running")
	}
	if cb.OnCapture == nil || cb.OnPlayback == nil {
		return fmt.Errorf("capture and playback callbacks are required")
	}

	if err := d.closeStreamsLocked(); err != nil {
		return err
	}

	inputDev, err := resolveDevice(config.InputDeviceID, true)
	if err != nil {
		return err
	}
	outputDev, err := resolveDevice(config.OutputDeviceID, false)
	if err != nil {
		return err
	}

	sampleRate := float64(config.SampleRate)
	if sampleRate == 0 {
		sampleRate = inputDev.DefaultSampleRate
	}

	inParams := portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   inputDev,
			Channels: config.Channels,
			Latency:  inputLatency(inputDev, config.Latency),
		},
		SampleRate:      sampleRate,
		FramesPerBuffer: config.FramesPerBuffer,
	}
	outParams := portaudio.StreamParameters{
		Output: portaudio.StreamDeviceParameters{
			Device:   outputDev,
			Channels: config.Channels,
			Latency:  outputLatency(outputDev, config.Latency),
		},
		SampleRate:      sampleRate,
		FramesPerBuffer: config.FramesPerBuffer,
	}

	inStream, err := portaudio.OpenStream(inParams,
		func(in []float32, _ portaudio.StreamCallbackTimeInfo, flags portaudio.StreamCallbackFlags) {
			d.reportFlags("capture", flags)
			cb.OnCapture(in)
		})
	if err != nil {
		return fmt.Errorf("failed to open input stream: %w", err)
	}

	outStream, err := portaudio.OpenStream(outParams,
		func(out []float32, _ portaudio.StreamCallbackTimeInfo, flags portaudio.StreamCallbackFlags) {
			d.reportFlags("playback", flags)
			cb.OnPlayback(out)
		})
	if err != nil {
		inStream.Close()
		return fmt.Errorf("failed to open output stream: %w", err)
	}

	d.inStream = inStream
	d.outStream = outStream
	d.config = config
	d.callbacks = cb
	d.initialized = true

	return nil
}

// resolveDevice maps a configured device ID (-1 for the system default) to
// a PortAudio device and validates its channel direction.
func resolveDevice(id int, input bool) (*portaudio.DeviceInfo, error) {
	direction := "output"
	if input {
		direction = "input"
	}

	var device *portaudio.DeviceInfo
	var err error

	if id == -1 {
		if input {
			device, err = portaudio.DefaultInputDevice()
		} else {
			device, err = portaudio.DefaultOutputDevice()
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get default %s device: %w", direction, err)
		}
	} else {
		devices, err := portaudio.Devices()
		if err != nil {
			return nil, fmt.Errorf("failed to list devices: %w", err)
		}
		if id < 0 || id >= len(devices) {
			return nil, fmt.Errorf("invalid %s device ID: %d", direction, id)
		}
		device = devices[id]
	}

	if input && device.MaxInputChannels <= 0 {
		return nil, fmt.Errorf("device '%s' has no input channels", device.Name)
	}
	if !input && device.MaxOutputChannels <= 0 {
		return nil, fmt.Errorf("device '%s' has no output channels", device.Name)
	}

	return device, nil
}

func inputLatency(dev *portaudio.DeviceInfo, mode LatencyMode) time.Duration {
	if mode == LowLatency {
		return dev.DefaultLowInputLatency
	}
	return dev.DefaultHighInputLatency
}

func outputLatency(dev *portaudio.DeviceInfo, mode LatencyMode) time.Duration {
	if mode == LowLatency {
		return dev.DefaultLowOutputLatency
	}
	return dev.DefaultHighOutputLatency
}

// reportFlags forwards stream-level faults to the fault callback. Faults
// are informational; the streams keep running.
func (d *PortAudioDriver) reportFlags(side string, flags portaudio.StreamCallbackFlags) {
	if flags == 0 || d.callbacks.OnFault == nil {
		return
	}
	if flags&portaudio.InputOverflow != 0 {
		d.callbacks.OnFault(fmt.Errorf("%s stream: input overflow", side))
	}
	if flags&portaudio.InputUnderflow != 0 {
		d.callbacks.OnFault(fmt.Errorf("%s stream: input underflow", side))
	}
	if flags&portaudio.OutputOverflow != 0 {
		d.callbacks.OnFault(fmt.Errorf("%s stream: output overflow", side))
	}
	if flags&portaudio.OutputUnderflow != 0 {
		d.callbacks.OnFault(fmt.Errorf("%s stream: output underflow", side))
	}
}

// Start starts both streams
func (d *PortAudioDriver) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return fmt.Errorf("driver not initialized")
	}
	if d.running {
		return fmt.Errorf("streams already running")
	}

	if err := d.inStream.Start(); err != nil {
		return fmt.Errorf("failed to start input stream: %w", err)
	}
	if err := d.outStream.Start(); err != nil {
		d.inStream.Stop()
		return fmt.Errorf("failed to start output stream: %w", err)
	}

	d.running = true
	return nil
}

// Stop stops both streams
func (d *PortAudioDriver) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopLocked()
}

func (d *PortAudioDriver) stopLocked() error {
	if !d.running {
		return fmt.Errorf("streams not running")
	}

	var firstErr error
	if err := d.outStream.Stop(); err != nil {
		firstErr = fmt.Errorf("failed to stop output stream: %w", err)
	}
	if err := d.inStream.Stop(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to stop input stream: %w", err)
	}

	d.running = false
	return firstErr
}

func (d *PortAudioDriver) closeStreamsLocked() error {
	if d.inStream != nil {
		if err := d.inStream.Close(); err != nil {
			return fmt.Errorf("failed to close input stream: %w", err)
		}
		d.inStream = nil
	}
	if d.outStream != nil {
		if err := d.outStream.Close(); err != nil {
			return fmt.Errorf("failed to close output stream: %w", err)
		}
		d.outStream = nil
	}
	return nil
}

// Close releases all resources
func (d *PortAudioDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		if err := d.stopLocked(); err != nil {
			return err
		}
	}

	if err := d.closeStreamsLocked(); err != nil {
		return err
	}

	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("failed to terminate PortAudio: %w", err)
	}

	d.initialized = false
	return nil
}
