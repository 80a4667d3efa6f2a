// Package tui is an interactive Bubble Tea front end for exploring a loaded
// YAML document with path expressions: type a path, pick which package
// ypath operation evaluates it, and see the matched node or the diagnostic
// update live. It is the terminal analogue of the original's YAPATEDlg
// dialog (file/path/method combo boxes and a result pane).
package tui
