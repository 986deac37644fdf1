//go:build !datafix_debug

package datafix

// debugChecks enables registration order assertions. Build with the
// datafix_debug tag to turn them on.
const debugChecks = false
