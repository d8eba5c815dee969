// Package reboot drives the reactor reboot procedure: it folds a sequence
// of instructions into a region.Set and reports the lit volume.
//
// A run consists of one or two passes selected by model.Mode. The bounded
// pass only applies instructions inside the initialization cube; the
// unrestricted pass applies all of them. Passes never share state.
package reboot
