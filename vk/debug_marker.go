package vk

// Extension names relevant to the debug-marker layer.
const (
	// ExtDebugMarker is VK_EXT_debug_marker, the device extension that
	// attaches names and tags to object handles.
	ExtDebugMarker = "VK_EXT_debug_marker"

	// ExtDebugReport is VK_EXT_debug_report, the instance extension
	// debug-marker builds on.
	ExtDebugReport = "VK_EXT_debug_report"
)

// DebugMarkerObjectNameInfo mirrors VkDebugMarkerObjectNameInfoEXT.
// Name is UTF-8; the driver boundary appends the terminator.
type DebugMarkerObjectNameInfo struct {
	ObjectType ObjectType
	Object     Handle
	Name       string
}

// DebugMarkerObjectTagInfo mirrors VkDebugMarkerObjectTagInfoEXT.
// TagName is the 64-bit tag identifier; Tag holds the raw bytes.
type DebugMarkerObjectTagInfo struct {
	ObjectType ObjectType
	Object     Handle
	TagName    uint64
	Tag        []byte
}
