// Package hotkey registers global shortcuts for the pitch presets, so the
// pitch can be changed while another window has focus.
package hotkey

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"

	"github.com/karitora/pitchvox/internal/pitch"
)

// Event reports a preset selected through a global shortcut
type Event struct {
	Preset pitch.Preset
}

// Manager manages global hotkey registration and events. The bindings are
// fixed: Ctrl+Shift+1 selects low, Ctrl+Shift+2 high and Ctrl+Shift+0
// normal. Ctrl+Shift is the one modifier pair available on every platform
// the hotkey library supports.
type Manager struct {
	low       *hotkey.Hotkey
	high      *hotkey.Hotkey
	normal    *hotkey.Hotkey
	eventChan chan Event
	stopChan  chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
	running   bool
}

// New creates a new hotkey manager
func New() *Manager {
	return &Manager{
		eventChan: make(chan Event, 10),
		stopChan:  make(chan struct{}),
	}
}

// Register registers the preset hotkeys with the system
func (m *Manager) Register() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return fmt.Errorf("hotkeys already registered, call Close() first")
	}

	// Recreate channels (they may have been closed by a previous Close())
	m.stopChan = make(chan struct{})
	m.eventChan = make(chan Event, 10)

	mods := []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}

	low := hotkey.New(mods, hotkey.Key1)
	high := hotkey.New(mods, hotkey.Key2)
	normal := hotkey.New(mods, hotkey.Key0)

	registered := make([]*hotkey.Hotkey, 0, 3)
	for _, hk := range []*hotkey.Hotkey{low, high, normal} {
		if err := hk.Register(); err != nil {
			for _, r := range registered {
				r.Unregister()
			}
			return fmt.Errorf("failed to register hotkey: %w", err)
		}
		registered = append(registered, hk)
	}

	m.low = low
	m.high = high
	m.normal = normal
	m.running = true

	m.wg.Add(1)
	go m.listen()

	return nil
}

// listen monitors hotkey events and sends them to the event channel
func (m *Manager) listen() {
	defer m.wg.Done()

	for {
		select {
		case <-m.low.Keydown():
			m.eventChan <- Event{Preset: pitch.Low}
		case <-m.high.Keydown():
			m.eventChan <- Event{Preset: pitch.High}
		case <-m.normal.Keydown():
			m.eventChan <- Event{Preset: pitch.Normal}
		case <-m.stopChan:
			return
		}
	}
}

// Events returns the event channel for receiving hotkey events
func (m *Manager) Events() <-chan Event {
	return m.eventChan
}

// Close unregisters the hotkeys and stops listening
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return nil
	}

	var unregisterErr error

	// Signal the listener to stop and wait for it to finish
	close(m.stopChan)
	m.wg.Wait()

	for _, hk := range []*hotkey.Hotkey{m.low, m.high, m.normal} {
		if hk == nil {
			continue
		}
		if err := hk.Unregister(); err != nil && unregisterErr == nil {
			unregisterErr = fmt.Errorf("failed to unregister hotkey: %w", err)
		}
	}

	// Close event channel to notify consumers of shutdown
	if m.eventChan != nil {
		close(m.eventChan)
		m.eventChan = nil
	}

	m.running = false

	return unregisterErr
}

// IsRunning returns whether the hotkeys are currently registered
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}
