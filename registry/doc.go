// Package registry tracks the debug-marker metadata attached to the Vulkan
// handles of a single device.
//
// The metadata layer registers every handle it names or tags, which gives
// tooling an enumerable view of the live objects without walking the wrapper
// graph.
//
// # Table
//
// The Table maps handles to metadata entries:
//
//	table := registry.NewTable()
//
//	table.Register(handle, vk.ObjectTypeBuffer)
//	table.SetName(handle, "staging buffer")
//
//	entry, ok := table.Get(handle)
//
// # Lifecycle Events
//
// Observers receive notifications as objects are registered, named, tagged,
// and released:
//
//	table.Subscribe(obs) // obs.OnObjectEvent(e) per change
//
// The table locks internally: tooling may snapshot it while the render path
// mutates it.
package registry
