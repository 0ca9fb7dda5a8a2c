// Package domain holds the error kinds every layer of the notifier shares.
// The entities themselves live in item (change events and assignment
// detection), notice (composed notification text) and push (multicast
// messages and their per-token outcome).
package domain
