// Package tui hosts the editor shell in a Bubble Tea program.
//
// Two goroutines cooperate. The Bubble Tea goroutine owns the screen and the
// editor component; the shell runs on a shell.Loop. TextArea is the only
// object both touch and it serializes access with a mutex. Bridge turns the
// shell's blocking collaborator calls into messages for the program and waits
// for the modal dialogs to answer.
package tui
