// Package geom implements the integer geometry used by the reboot
// procedure: closed integer intervals and axis-aligned boxes built from
// three of them.
//
// Both types are immutable values. Every operation is total: an empty
// result ("no overlap") is reported through a boolean or an empty slice,
// never through an error.
package geom
