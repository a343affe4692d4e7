package driver

import "github.com/TuboFmc/anvil/vk"

// Dispatch is the VK_EXT_debug_marker portion of a device's function table.
// Implementations forward to vkDebugMarkerSetObjectNameEXT and
// vkDebugMarkerSetObjectTagEXT, or stand in for them in tests.
type Dispatch interface {
	DebugMarkerSetObjectName(info *vk.DebugMarkerObjectNameInfo) vk.Result
	DebugMarkerSetObjectTag(info *vk.DebugMarkerObjectTagInfo) vk.Result
}
