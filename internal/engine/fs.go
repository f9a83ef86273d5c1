/*
PURPOSE:
  File access for the engine.
  The Session never touches the disk directly; it goes through a FileSystem
  so tests can swap in an in-memory implementation.

REQUIREMENTS:
  User-specified:
  - import reads a whole file; save creates/truncates a file and writes it.

  Implementation-discovered:
  - Whole-file, synchronous operations only. No streaming, no partial-write
    recovery: a failed write may leave a truncated file.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/session.go, internal/engine/results.go
  - Production implementation: OSFileSystem.

ERROR HANDLING:
  - OS errors are returned as-is; callers wrap them in ReadError / WriteError.

IMPLEMENTATION RULES:
  - Use os.ReadFile and os.Create.

USAGE:
  s := engine.NewSession(opts, engine.OSFileSystem{})

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/results.go

MAINTENANCE:
  - None.
*/

package engine

import (
	"io"
	"os"
)

// FileSystem is the file capability consumed by the engine.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	Create(name string) (io.WriteCloser, error)
}

// OSFileSystem implements FileSystem on the local disk.
type OSFileSystem struct{}

// ReadFile reads the named file.
func (OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Create creates or truncates the named file.
func (OSFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name)
}
