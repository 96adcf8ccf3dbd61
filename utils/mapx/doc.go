// Package mapx provides small helpers for Go maps: lookup with a presence
// flag, deterministic key ordering and key=value rendering.
//
// Go maps have no iteration order, so every function that produces ordered
// output sorts the keys first.
package mapx
