// Package testutil provides utilities for testing discomon components.
//
// Key components:
//   - Isolate: points XDG directories at a temp dir and clears the
//     environment variables the config layer reads
//   - CreateFile: writes fixture files, creating parent directories
//   - FakeMaster: an httptest server speaking the Disco master endpoints
//     used by the monitor
//
// Each test should be completely isolated with no shared state.
package testutil
