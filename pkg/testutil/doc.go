// Package testutil provides helpers shared by cio tests.
//
// Key components:
//   - Isolate: points the XDG directories at temp dirs and clears CIO_
//     variables and NO_COLOR, so no user configuration leaks into a test
//   - CreateFile / ReadFile: small file fixtures that fail the test on error
package testutil
