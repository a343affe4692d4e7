// Package anvil provides a thin Go abstraction layer over the Vulkan API.
//
// This subset of the framework implements debug-marker support: wrapper
// objects around native Vulkan handles carry a human-readable name and an
// opaque tag, and that metadata is forwarded to the driver through the
// VK_EXT_debug_marker extension when the device enables it.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	anvil/           Root package with the Named interface wrapper types embed
//	├── vk/          Minimal Vulkan ABI surface: handles, object types, results
//	├── driver/      Device front and extension dispatch table
//	├── marker/      Name/tag caching workers and providers
//	├── registry/    Per-device table of named objects with lifecycle events
//	├── report/      YAML snapshots of a registry for offline tooling
//	├── errors/      Structured error types for driver and tooling failures
//	└── cmd/         vkmarkers report browser
//
// # Quick Start
//
// Attach a name to a buffer handle:
//
//	dev := driver.NewDevice(dispatch, driver.WithExtensions(vk.ExtDebugMarker))
//	defer dev.Close()
//
//	buf := marker.NewProvider(dev, vk.ObjectTypeBuffer)
//	buf.SetHandle(bufferHandle)
//	buf.SetNamef("staging buffer %d", idx)
//
// Composite objects front several handles with one logical identity:
//
//	sc := marker.NewDelegateProvider(dev, vk.ObjectTypeImage)
//	for _, img := range swapchainImages {
//		sc.AddDelegate(img)
//	}
//	sc.SetName("swapchain image") // applied to every image handle
//
// When the device does not enable VK_EXT_debug_marker all operations degrade
// to pure local caching; no driver call is ever issued.
package anvil
