//go:build datafix_debug

package datafix

const debugChecks = true
