package anvil

// Named is implemented by every wrapper type that exposes debug-marker
// metadata for the Vulkan handles it owns. Composite wrappers fan the calls
// out so all fronted handles always carry identical name and tag.
type Named interface {
	// SetName associates a human-readable name with all maintained handles.
	SetName(name string)

	// SetNamef formats a name fmt.Sprintf-style and behaves like SetName.
	// A result longer than the driver-side name buffer is silently truncated.
	SetNamef(format string, args ...any)

	// SetTag associates an opaque tag with all maintained handles. tagID and
	// data follow the VK_EXT_debug_marker extension specification; data must
	// not be empty.
	SetTag(tagID uint64, data []byte)
}
