// Package editor provides the Bubble Tea text-edit component used as the
// QuickPad edit area, backed by the buffer package.
//
// The package is responsible for key handling, viewport behavior,
// grapheme-aware rendering, clipboard actions, and change events. Hosts that
// mutate the document programmatically do so through the Model's edit
// methods, which do not fire OnChange; only input-driven changes do.
package editor
