package vk

// Handle is an opaque reference to a driver-owned Vulkan object.
// Both dispatchable and non-dispatchable handles fit in 64 bits.
// NullHandle is reserved and never refers to a live object.
type Handle uint64

// NullHandle is the zero handle (VK_NULL_HANDLE).
const NullHandle Handle = 0
