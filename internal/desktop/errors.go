package desktop

import (
	"errors"
)

// ErrUserCancelled is returned when a file dialog is dismissed without a selection.
// The front-end matches on its message, so keep it stable.
var ErrUserCancelled = errors.New("user cancelled")

// ErrInvalidPath is returned when a dialog hands back something that is not a
// filesystem path.
var ErrInvalidPath = errors.New("invalid path")

// ErrNotText is returned when an imported file is not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// Kind classifies bridge errors.
type Kind int

const (
	KindUnknown Kind = iota
	KindCancelled
	KindFilesystem
	KindHost
)

func (k Kind) String() string {
	switch k {
	case KindCancelled:
		return "cancelled"
	case KindFilesystem:
		return "filesystem"
	case KindHost:
		return "host"
	default:
		return "unknown"
	}
}

// FileError is a filesystem failure during export or import. Its message is
// the underlying error's message, unchanged.
type FileError struct {
	Op   string // "export" or "import"
	Path string
	Err  error
}

func (e *FileError) Error() string { return e.Err.Error() }
func (e *FileError) Unwrap() error { return e.Err }

// HostError is a failure reported by a native host service (notification
// centre, dialog service). Its message is the host's, unchanged.
type HostError struct {
	Op  string
	Err error
}

func (e *HostError) Error() string { return e.Err.Error() }
func (e *HostError) Unwrap() error { return e.Err }

// KindOf classifies err.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, ErrUserCancelled) {
		return KindCancelled
	}
	var fe *FileError
	if errors.As(err, &fe) {
		return KindFilesystem
	}
	var he *HostError
	if errors.As(err, &he) {
		return KindHost
	}
	return KindUnknown
}
