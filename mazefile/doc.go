// Package mazefile loads and saves mazes in the 256-byte .maz format.
//
// The file carries walls only. The caller supplies the active width and
// height on load; start and finish are placed bottom-left and top-right.
// Bytes are kept as read, so Load then Save reproduces the file whatever
// size it was drawn at.
package mazefile
