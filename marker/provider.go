package marker

import (
	"fmt"

	"github.com/TuboFmc/anvil"
	"github.com/TuboFmc/anvil/driver"
	"github.com/TuboFmc/anvil/vk"
)

var (
	_ anvil.Named = (*Provider)(nil)
	_ anvil.Named = (*DelegateProvider)(nil)
)

// Provider attaches debug-marker metadata to a single Vulkan handle.
// Wrapper types that own exactly one handle embed it.
type Provider struct {
	worker *Worker
}

// NewProvider creates a single-handle provider bound to a live device.
func NewProvider(dev *driver.Device, objType vk.ObjectType) *Provider {
	return &Provider{worker: NewWorker(dev, objType)}
}

// SetHandle sets the one tracked handle. See Worker.SetHandle for the
// null/non-null transition rules.
func (p *Provider) SetHandle(h vk.Handle) {
	p.worker.SetHandle(h)
}

// Handle returns the tracked handle.
func (p *Provider) Handle() vk.Handle {
	return p.worker.Handle()
}

// Name returns the cached name.
func (p *Provider) Name() string {
	return p.worker.Name()
}

// Tag returns the cached tag identifier and bytes.
func (p *Provider) Tag() (uint64, []byte) {
	return p.worker.Tag()
}

// SetName associates a name with the tracked handle.
func (p *Provider) SetName(name string) {
	p.worker.SetName(name, false)
}

// SetNamef formats a name and behaves like SetName. The result is silently
// truncated to the driver-side buffer capacity.
func (p *Provider) SetNamef(format string, args ...any) {
	p.SetName(formatName(format, args...))
}

// SetTag associates a tag with the tracked handle. data must not be empty.
func (p *Provider) SetTag(tagID uint64, data []byte) {
	assertf(len(data) > 0, "empty tag data")
	p.worker.SetTag(tagID, data, false)
}

// DelegateProvider attaches one logical name and tag to a set of Vulkan
// handles. Composite wrappers that front several native objects embed it;
// every set call fans out so all delegates carry identical metadata.
type DelegateProvider struct {
	dev     *driver.Device
	objType vk.ObjectType
	workers []*Worker
}

// NewDelegateProvider creates a delegate provider bound to a live device.
func NewDelegateProvider(dev *driver.Device, objType vk.ObjectType) *DelegateProvider {
	assertf(dev != nil, "nil device")
	assertf(dev.Alive(), "provider created against a closed device")

	return &DelegateProvider{
		dev:     dev,
		objType: objType,
	}
}

// AddDelegate starts tracking a handle. The handle must be non-null and not
// already delegated. When other delegates exist, the first delegate's current
// name and tag are copied onto the new one so the set stays consistent.
func (d *DelegateProvider) AddDelegate(h vk.Handle) {
	assertf(h != vk.NullHandle, "null delegate handle")
	for _, w := range d.workers {
		assertf(w.Handle() != h, "handle 0x%x already delegated", h)
	}

	w := NewWorker(d.dev, d.objType)
	w.SetHandle(h)
	d.workers = append(d.workers, w)

	if len(d.workers) > 1 {
		first := d.workers[0]
		w.SetName(first.Name(), false)
		if tagID, tag := first.Tag(); len(tag) > 0 {
			w.SetTag(tagID, tag, false)
		}
	}
}

// RemoveDelegate stops tracking a handle previously added with AddDelegate.
// An unknown handle is a contract violation.
func (d *DelegateProvider) RemoveDelegate(h vk.Handle) {
	idx := -1
	for i, w := range d.workers {
		if w.Handle() == h {
			idx = i
			break
		}
	}
	assertf(idx >= 0, "handle 0x%x is not delegated", h)

	d.workers[idx].SetHandle(vk.NullHandle)
	d.workers = append(d.workers[:idx], d.workers[idx+1:]...)
}

// Len returns the number of delegated handles.
func (d *DelegateProvider) Len() int {
	return len(d.workers)
}

// Handles returns the delegated handles in registration order.
func (d *DelegateProvider) Handles() []vk.Handle {
	out := make([]vk.Handle, len(d.workers))
	for i, w := range d.workers {
		out[i] = w.Handle()
	}
	return out
}

// Name returns the logical name carried by the delegate set.
func (d *DelegateProvider) Name() string {
	if len(d.workers) == 0 {
		return ""
	}
	return d.workers[0].Name()
}

// Tag returns the logical tag carried by the delegate set.
func (d *DelegateProvider) Tag() (uint64, []byte) {
	if len(d.workers) == 0 {
		return 0, nil
	}
	return d.workers[0].Tag()
}

// SetName associates a name with every delegated handle.
func (d *DelegateProvider) SetName(name string) {
	for _, w := range d.workers {
		w.SetName(name, false)
	}
}

// SetNamef formats a name and behaves like SetName. The result is silently
// truncated to the driver-side buffer capacity.
func (d *DelegateProvider) SetNamef(format string, args ...any) {
	name := formatName(format, args...)
	for _, w := range d.workers {
		w.SetName(name, false)
	}
}

// SetTag associates a tag with every delegated handle. data must not be empty.
func (d *DelegateProvider) SetTag(tagID uint64, data []byte) {
	assertf(len(data) > 0, "empty tag data")
	for _, w := range d.workers {
		w.SetTag(tagID, data, false)
	}
}

func formatName(format string, args ...any) string {
	name := fmt.Sprintf(format, args...)
	if len(name) >= nameBufferSize {
		name = name[:nameBufferSize-1]
	}
	return name
}
