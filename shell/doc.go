// Package shell implements the QuickPad editor shell: one document path, one
// modified flag, and the handlers that turn menu commands into widget, dialog,
// and file operations.
//
// The shell never renders anything itself. It talks to its collaborators
// through the interfaces in collaborators.go and expects every handler to run
// on a single goroutine, normally the one draining a Loop.
package shell
