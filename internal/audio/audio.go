package audio

// Device represents an audio device
type Device struct {
	ID                int
	Name              string
	IsDefaultInput    bool
	IsDefaultOutput   bool
	MaxInputChannels  int
	MaxOutputChannels int
}

// LatencyMode defines the latency priority
type LatencyMode int

const (
	// LowLatency prioritizes low latency (real-time)
	LowLatency LatencyMode = iota
	// HighStability prioritizes stability (larger buffer)
	HighStability
)

// Config holds audio configuration
type Config struct {
	InputDeviceID   int
	OutputDeviceID  int
	SampleRate      int
	Channels        int
	FramesPerBuffer int
	Latency         LatencyMode
}

// DefaultConfig returns the default audio configuration
// Sample rate: 0 (negotiate the device default)
// Channels: 1 (mono)
// Latency: LowLatency (this is a live loopback)
func DefaultConfig() Config {
	return Config{
		InputDeviceID:   -1, // -1 means use default device
		OutputDeviceID:  -1,
		SampleRate:      0,
		Channels:        1,
		FramesPerBuffer: 1024,
		Latency:         LowLatency,
	}
}

// Callbacks are invoked from the audio subsystem's own stream goroutines.
// OnCapture receives each block of interleaved input samples; OnPlayback
// must fill each output block; OnFault receives asynchronous stream-level
// faults (over/underflows), which do not stop the pipeline by themselves.
type Callbacks struct {
	OnCapture  func(in []float32)
	OnPlayback func(out []float32)
	OnFault    func(err error)
}

// Driver is the interface for duplex audio I/O
// This abstraction allows for future replacement of PortAudio with other libraries (e.g., miniaudio)
type Driver interface {
	// ListDevices returns a list of available audio devices
	ListDevices() ([]Device, error)

	// Initialize opens the input and output streams with the given
	// configuration and callbacks
	Initialize(config Config, cb Callbacks) error

	// Start starts both streams
	Start() error

	// Stop stops both streams
	Stop() error

	// Close releases all resources
	Close() error
}
