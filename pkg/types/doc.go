// Package types defines the device spec entities, the Catalog and Table
// interfaces, and the standard error values for the robocad device catalog.
package types
