package driver

import (
	"go.uber.org/zap"

	"github.com/TuboFmc/anvil/registry"
)

// Device is a non-owning front for a Vulkan logical device. It carries the
// extension dispatch table, the set of extensions enabled at device creation,
// and the table of objects the metadata layer has registered.
//
// The native device's lifetime is the caller's responsibility: call Close
// when the VkDevice is destroyed. Device performs no native cleanup.
type Device struct {
	name       string
	dispatch   Dispatch
	extensions map[string]bool
	objects    *registry.Table
	log        *zap.Logger
	closed     bool
}

// Option configures a Device at construction.
type Option func(*Device)

// WithExtensions declares the device extensions enabled at creation time.
func WithExtensions(names ...string) Option {
	return func(d *Device) {
		for _, n := range names {
			d.extensions[n] = true
		}
	}
}

// WithLogger sets the device's logger. Defaults to the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Device) {
		d.log = l
	}
}

// WithName sets a label for the device used in logs and reports.
func WithName(name string) Option {
	return func(d *Device) {
		d.name = name
	}
}

// NewDevice wraps a dispatch table. dispatch must not be nil.
func NewDevice(dispatch Dispatch, opts ...Option) *Device {
	if dispatch == nil {
		panic("driver: nil dispatch table")
	}

	d := &Device{
		name:       "device",
		dispatch:   dispatch,
		extensions: make(map[string]bool),
		objects:    registry.NewTable(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = Logger()
	}

	d.log.Debug("device wrapped",
		zap.String("device", d.name),
		zap.Int("extensions", len(d.extensions)))
	return d
}

// Name returns the device label.
func (d *Device) Name() string {
	return d.name
}

// SupportsExtension reports whether the named device extension was enabled
// at creation time.
func (d *Device) SupportsExtension(name string) bool {
	return d.extensions[name]
}

// Dispatch returns the extension function table.
func (d *Device) Dispatch() Dispatch {
	return d.dispatch
}

// Objects returns the table of registered named objects.
func (d *Device) Objects() *registry.Table {
	return d.objects
}

// Log returns the device's logger.
func (d *Device) Log() *zap.Logger {
	return d.log
}

// Alive reports whether the native device is still valid.
func (d *Device) Alive() bool {
	return !d.closed
}

// Close marks the native device destroyed and clears the object table.
// Metadata operations that would reach the driver panic after this point.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.log.Debug("device closed", zap.String("device", d.name))
	return d.objects.Close()
}
