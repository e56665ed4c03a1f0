// Package stubs renders reflected chunk records as a Python type stub
// (.pyi) document and writes it to every target atomically.
package stubs
