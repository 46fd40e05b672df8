// Package resource provides typed handle tables for GL object names.
//
// A table maps integer handles to Go values and records the type each
// handle was created with. Drivers use one table per context so names are
// scoped the way GL scopes them.
//
//	table := resource.NewTable()
//
//	h, err := table.Insert(uint32(class.Buffer), bufferState)
//
//	// Type-checked retrieval
//	v, ok := table.GetTyped(h, uint32(class.Buffer))  // ok
//	v, ok = table.GetTyped(h, uint32(class.Texture))  // !ok
//
//	// Removal calls Drop on values implementing Dropper
//	v, ok = table.Remove(h)
//
// # Handles
//
// Handle 0 is never issued. Scripts receive a null object for it, which
// matches GL where name 0 means "no object". Removed handles are never
// reused, so a stale name cannot alias a newer object.
//
// # Observers
//
// Observers receive created and dropped events synchronously, after the
// table lock is released:
//
//	table.Subscribe(observer) // observer implements OnResourceEvent
//
// Close drops every live entry and makes Insert fail with a closed error.
package resource
