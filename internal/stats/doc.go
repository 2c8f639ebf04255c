// Package stats derives read-only figures from dashboard snapshots.
//
// Every function is pure: it takes the collections and the reference date
// explicitly and never caches or persists its result.
package stats
