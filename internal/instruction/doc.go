// Package instruction reads reboot instructions from text.
//
// Each non-blank line has the form
//
//	(on|off) x=<int>..<int>,y=<int>..<int>,z=<int>..<int>
//
// with inclusive, possibly negative bounds. Lines are parsed lazily through
// Scan, so a caller can stop at the first malformed line without reading the
// rest of the input. ReadFile is the convenience wrapper used by the CLI: it
// loads a whole file and converts failures into CLI errors.
package instruction
