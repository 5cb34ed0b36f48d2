// Package wirestack holds module-wide metadata for the WireStack
// front-end tools.
package wirestack

// Version is the wirestack-tui release version.
const Version = "0.1.0"
