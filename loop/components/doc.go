// Package components provides reference capabilities for loop entities:
// a bouncing physics policy, a sprite renderer, a directional steering input
// and a call counter.
package components
