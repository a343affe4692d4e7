package vk

import "fmt"

// ObjectType identifies the kind of Vulkan object a handle refers to.
// Values match the VkDebugReportObjectTypeEXT enumerants.
type ObjectType int32

const (
	ObjectTypeUnknown             ObjectType = 0
	ObjectTypeInstance            ObjectType = 1
	ObjectTypePhysicalDevice      ObjectType = 2
	ObjectTypeDevice              ObjectType = 3
	ObjectTypeQueue               ObjectType = 4
	ObjectTypeSemaphore           ObjectType = 5
	ObjectTypeCommandBuffer       ObjectType = 6
	ObjectTypeFence               ObjectType = 7
	ObjectTypeDeviceMemory        ObjectType = 8
	ObjectTypeBuffer              ObjectType = 9
	ObjectTypeImage               ObjectType = 10
	ObjectTypeEvent               ObjectType = 11
	ObjectTypeQueryPool           ObjectType = 12
	ObjectTypeBufferView          ObjectType = 13
	ObjectTypeImageView           ObjectType = 14
	ObjectTypeShaderModule        ObjectType = 15
	ObjectTypePipelineCache       ObjectType = 16
	ObjectTypePipelineLayout      ObjectType = 17
	ObjectTypeRenderPass          ObjectType = 18
	ObjectTypePipeline            ObjectType = 19
	ObjectTypeDescriptorSetLayout ObjectType = 20
	ObjectTypeSampler             ObjectType = 21
	ObjectTypeDescriptorPool      ObjectType = 22
	ObjectTypeDescriptorSet       ObjectType = 23
	ObjectTypeFramebuffer         ObjectType = 24
	ObjectTypeCommandPool         ObjectType = 25
	ObjectTypeSurfaceKHR          ObjectType = 26
	ObjectTypeSwapchainKHR        ObjectType = 27
	ObjectTypeDebugReportCallback ObjectType = 28
	ObjectTypeDisplayKHR          ObjectType = 29
	ObjectTypeDisplayModeKHR      ObjectType = 30
	ObjectTypeValidationCache     ObjectType = 33
)

var objectTypeNames = map[ObjectType]string{
	ObjectTypeUnknown:             "unknown",
	ObjectTypeInstance:            "instance",
	ObjectTypePhysicalDevice:      "physical-device",
	ObjectTypeDevice:              "device",
	ObjectTypeQueue:               "queue",
	ObjectTypeSemaphore:           "semaphore",
	ObjectTypeCommandBuffer:       "command-buffer",
	ObjectTypeFence:               "fence",
	ObjectTypeDeviceMemory:        "device-memory",
	ObjectTypeBuffer:              "buffer",
	ObjectTypeImage:               "image",
	ObjectTypeEvent:               "event",
	ObjectTypeQueryPool:           "query-pool",
	ObjectTypeBufferView:          "buffer-view",
	ObjectTypeImageView:           "image-view",
	ObjectTypeShaderModule:        "shader-module",
	ObjectTypePipelineCache:       "pipeline-cache",
	ObjectTypePipelineLayout:      "pipeline-layout",
	ObjectTypeRenderPass:          "render-pass",
	ObjectTypePipeline:            "pipeline",
	ObjectTypeDescriptorSetLayout: "descriptor-set-layout",
	ObjectTypeSampler:             "sampler",
	ObjectTypeDescriptorPool:      "descriptor-pool",
	ObjectTypeDescriptorSet:       "descriptor-set",
	ObjectTypeFramebuffer:         "framebuffer",
	ObjectTypeCommandPool:         "command-pool",
	ObjectTypeSurfaceKHR:          "surface",
	ObjectTypeSwapchainKHR:        "swapchain",
	ObjectTypeDebugReportCallback: "debug-report-callback",
	ObjectTypeDisplayKHR:          "display",
	ObjectTypeDisplayModeKHR:      "display-mode",
	ObjectTypeValidationCache:     "validation-cache",
}

func (t ObjectType) String() string {
	if name, ok := objectTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("object-type(%d)", int32(t))
}

// ParseObjectType maps a name produced by String back to its ObjectType.
func ParseObjectType(name string) (ObjectType, bool) {
	for t, n := range objectTypeNames {
		if n == name {
			return t, true
		}
	}
	return ObjectTypeUnknown, false
}
