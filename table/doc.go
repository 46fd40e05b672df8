// Package table installs constant and method tables onto script objects.
//
// Tables are supplied by the caller; this package only defines which
// entries land on which surface:
//
//	table.InstallConstants(proto, gles.Constants())
//	table.InstallMethods(vm, proto, table.SurfaceBase, methods)
//
// SurfaceBase installs entries not tagged as extensions. SurfaceExtended
// installs every entry.
package table
