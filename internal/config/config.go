// Package config loads and validates the application configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/karitora/pitchvox/internal/logger"
)

// Config holds application configuration
type Config struct {
	InputDeviceID   int     `json:"input_device_id"`  // -1 means use system default device
	OutputDeviceID  int     `json:"output_device_id"` // -1 means use system default device
	SampleRate      int     `json:"sample_rate"`      // 0 means use the device default
	Channels        int     `json:"channels"`
	FramesPerBuffer int     `json:"frames_per_buffer"`
	FrameSize       int     `json:"frame_size"` // shared capture frame, in samples
	LowFactor       float32 `json:"low_factor"`
	NormalFactor    float32 `json:"normal_factor"`
	HighFactor      float32 `json:"high_factor"`
	HotkeysEnabled  bool    `json:"hotkeys_enabled"`
	LogLevel        string  `json:"log_level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		InputDeviceID:   -1,
		OutputDeviceID:  -1,
		SampleRate:      0,
		Channels:        1,
		FramesPerBuffer: 1024,
		FrameSize:       1024,
		LowFactor:       0.7,
		NormalFactor:    1.0,
		HighFactor:      1.3,
		HotkeysEnabled:  false,
		LogLevel:        "info",
	}
}

// Load loads configuration from the specified path
func Load(path string) (*Config, error) {
	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Save saves configuration to the specified path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	return filepath.Join(configDir, "pitchvox", "config.json")
}

// Validate validates all configuration fields
func (c *Config) Validate() error {
	if c.Channels <= 0 {
		return fmt.Errorf("invalid channels: %d (must be positive)", c.Channels)
	}

	if c.FramesPerBuffer <= 0 {
		return fmt.Errorf("invalid frames_per_buffer: %d (must be positive)", c.FramesPerBuffer)
	}

	if c.FrameSize <= 0 {
		return fmt.Errorf("invalid frame_size: %d (must be positive)", c.FrameSize)
	}

	if c.SampleRate < 0 {
		return fmt.Errorf("invalid sample_rate: %d (must be 0 for device default, or positive)", c.SampleRate)
	}

	// Zero or negative pitch factors make the resampling index computation
	// meaningless, so they are rejected here rather than at the callback.
	if c.LowFactor <= 0 {
		return fmt.Errorf("invalid low_factor: %v (must be positive)", c.LowFactor)
	}
	if c.NormalFactor <= 0 {
		return fmt.Errorf("invalid normal_factor: %v (must be positive)", c.NormalFactor)
	}
	if c.HighFactor <= 0 {
		return fmt.Errorf("invalid high_factor: %v (must be positive)", c.HighFactor)
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	return nil
}
