package marker

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/TuboFmc/anvil/driver"
	"github.com/TuboFmc/anvil/vk"
)

// nameBufferSize matches the fixed formatting buffer of the original driver
// ABI; formatted names are truncated to nameBufferSize-1 bytes.
const nameBufferSize = 1024

// Worker caches the name and tag for a single Vulkan handle and performs the
// extension calls. It is only used through Provider and DelegateProvider.
//
// Extension support is queried once at construction. When the device does not
// enable VK_EXT_debug_marker, all operations are pure local caching.
type Worker struct {
	dev       *driver.Device
	objType   vk.ObjectType
	supported bool
	name      string
	tagID     uint64
	tag       []byte
	handle    vk.Handle
}

// NewWorker creates a worker bound to a live device.
func NewWorker(dev *driver.Device, objType vk.ObjectType) *Worker {
	assertf(dev != nil, "nil device")
	assertf(dev.Alive(), "worker created against a closed device")

	return &Worker{
		dev:       dev,
		objType:   objType,
		supported: dev.SupportsExtension(vk.ExtDebugMarker),
	}
}

// Name returns the cached name.
func (w *Worker) Name() string {
	return w.name
}

// Tag returns the cached tag identifier and a copy of the tag bytes.
func (w *Worker) Tag() (uint64, []byte) {
	return w.tagID, append([]byte(nil), w.tag...)
}

// Handle returns the tracked handle, NullHandle when none is assigned.
func (w *Worker) Handle() vk.Handle {
	return w.handle
}

// Type returns the object type the worker was created for.
func (w *Worker) Type() vk.ObjectType {
	return w.objType
}

// Supported reports whether the device enabled VK_EXT_debug_marker.
func (w *Worker) Supported() bool {
	return w.supported
}

// SetName caches name and forwards it to the driver. An unchanged name is
// not re-sent unless force is set.
func (w *Worker) SetName(name string, force bool) {
	if w.name == name && !force {
		return
	}
	w.name = name

	if w.handle == vk.NullHandle {
		return
	}
	w.dev.Objects().SetName(w.handle, name)

	if !w.supported {
		return
	}
	w.ensureAlive("set object name")

	res := w.dev.Dispatch().DebugMarkerSetObjectName(&vk.DebugMarkerObjectNameInfo{
		ObjectType: w.objType,
		Object:     w.handle,
		Name:       name,
	})
	if res != vk.Success {
		w.dev.Log().Warn("debug marker name rejected",
			zap.Stringer("type", w.objType),
			zap.Uint64("object", uint64(w.handle)),
			zap.Error(res))
	}
}

// SetTag caches the tag and forwards it to the driver. The byte range is
// copied into owned storage. An unchanged tag is not re-sent unless force
// is set.
func (w *Worker) SetTag(tagID uint64, data []byte, force bool) {
	if w.tagID == tagID && bytes.Equal(w.tag, data) && !force {
		return
	}
	w.tagID = tagID
	w.tag = append([]byte(nil), data...)

	if w.handle == vk.NullHandle {
		return
	}
	w.dev.Objects().SetTag(w.handle, tagID, w.tag)

	if !w.supported {
		return
	}
	w.ensureAlive("set object tag")

	res := w.dev.Dispatch().DebugMarkerSetObjectTag(&vk.DebugMarkerObjectTagInfo{
		ObjectType: w.objType,
		Object:     w.handle,
		TagName:    tagID,
		Tag:        w.tag,
	})
	if res != vk.Success {
		w.dev.Log().Warn("debug marker tag rejected",
			zap.Stringer("type", w.objType),
			zap.Uint64("object", uint64(w.handle)),
			zap.Uint64("tag", tagID),
			zap.Error(res))
	}
}

// SetHandle replaces the tracked handle. Transitions between null and
// non-null are allowed in either direction; replacing one live handle with
// another is a contract violation.
//
// Cached metadata travels with the handle in the device's object table, but
// no driver call is issued; the next SetName/SetTag reaches the driver.
func (w *Worker) SetHandle(h vk.Handle) {
	assertf(w.handle == vk.NullHandle || h == vk.NullHandle,
		"handle 0x%x already tracked, clear it before assigning 0x%x", w.handle, h)

	if h == w.handle {
		return
	}

	if w.handle != vk.NullHandle {
		w.dev.Objects().Release(w.handle)
	}
	w.handle = h
	if h == vk.NullHandle {
		return
	}

	assertf(w.dev.Alive(), "handle assigned after device close")
	w.dev.Objects().Register(h, w.objType)
	if w.name != "" {
		w.dev.Objects().SetName(h, w.name)
	}
	if len(w.tag) > 0 {
		w.dev.Objects().SetTag(h, w.tagID, w.tag)
	}
}

func (w *Worker) ensureAlive(op string) {
	assertf(w.dev.Alive(), "%s on 0x%x: device closed", op, w.handle)
}
