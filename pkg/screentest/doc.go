// Package screentest provides deterministic test doubles for controller and
// screen code: a recording host that captures rebuild requests and queued
// frame callbacks, and a manual scheduler that fires debounce timers only
// when told to.
package screentest
