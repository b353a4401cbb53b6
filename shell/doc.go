// Package shell implements the interactive command loop for exercising a
// string-keyed hash map.
//
// A Shell reads single-line commands from its input (new, insert, remove,
// get, contains, drop, len, capacity, reserve, print, help, quit), prompts
// for a key and an integer value where a command needs them, and reports
// results on its output. Diagnostics go through a level-filtered logrus
// logger; container-operation failures are recoverable — the loop prints a
// diagnostic and keeps going.
//
// All state (the map handle, the streams, the logger) lives on the Shell
// value; the package holds no globals.
package shell
