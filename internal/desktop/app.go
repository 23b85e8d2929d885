// Package desktop implements the operations the Flowy front-end calls into:
// native notifications and file export/import through native dialogs.
package desktop

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/lyeka/flowy/internal/logging"
)

// Version is set at build time via ldflags
var Version = "0.1.0-dev"

// now is replaced in tests.
var now = time.Now

// Notifier shows a native system notification.
type Notifier interface {
	Notify(title, body string) error
}

// FileFilter is an advisory dialog filter, e.g. {"JSON", "*.json"}.
type FileFilter struct {
	DisplayName string
	Pattern     string
}

// SaveRequest describes a save-file dialog.
type SaveRequest struct {
	Title            string
	DefaultDirectory string
	DefaultFilename  string
	Filters          []FileFilter
}

// OpenRequest describes an open-file dialog.
type OpenRequest struct {
	Title            string
	DefaultDirectory string
	Filters          []FileFilter
}

// FileDialogs presents native file pickers. An empty path with a nil error
// means the user dismissed the dialog.
type FileDialogs interface {
	SaveFile(ctx context.Context, req SaveRequest) (string, error)
	OpenFile(ctx context.Context, req OpenRequest) (string, error)
}

var (
	jsonFilter     = FileFilter{DisplayName: "JSON", Pattern: "*.json"}
	markdownFilter = FileFilter{DisplayName: "Markdown", Pattern: "*.md"}
)

// App holds the host capabilities the bridge operations delegate to.
type App struct {
	notifier Notifier
	dialogs  FileDialogs

	mu        sync.RWMutex
	exportDir string
}

// Option configures an App.
type Option func(*App)

// WithExportDir sets the directory the file dialogs open in.
func WithExportDir(dir string) Option {
	return func(a *App) { a.exportDir = dir }
}

// NewApp creates a new App over the given host capabilities.
func NewApp(notifier Notifier, dialogs FileDialogs, opts ...Option) *App {
	a := &App{notifier: notifier, dialogs: dialogs}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetExportDir changes the directory the file dialogs open in. Empty lets
// the host pick.
func (a *App) SetExportDir(dir string) {
	a.mu.Lock()
	a.exportDir = dir
	a.mu.Unlock()
}

// ExportDir returns the directory the file dialogs open in.
func (a *App) ExportDir() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.exportDir
}

// GetVersion returns the application version
func (a *App) GetVersion() string {
	return Version
}

// Notify displays a native notification. Title and body are passed through
// as-is; the call returns once the host has accepted the request.
func (a *App) Notify(ctx context.Context, title, body string) error {
	ctx = logging.WithCallID(ctx, logging.NewCallID())
	log := logging.WithContext(ctx)

	if err := a.notifier.Notify(title, body); err != nil {
		err = &HostError{Op: "notify", Err: err}
		log.Warn("notification failed", logging.Err(err))
		return err
	}
	log.Debug("notification shown", logging.Int("title_len", len(title)), logging.Int("body_len", len(body)))
	return nil
}

// Export asks the user for a destination and writes data there, replacing any
// existing file. It returns the absolute path written.
func (a *App) Export(ctx context.Context, data string) (string, error) {
	ctx = logging.WithCallID(ctx, logging.NewCallID())
	log := logging.WithContext(ctx)

	selected, err := a.dialogs.SaveFile(ctx, SaveRequest{
		Title:            "Export Data",
		DefaultDirectory: a.ExportDir(),
		DefaultFilename:  defaultExportName(),
		Filters:          []FileFilter{jsonFilter, markdownFilter},
	})
	if err != nil {
		err = &HostError{Op: "export", Err: err}
		log.Warn("save dialog failed", logging.Err(err))
		return "", err
	}
	if selected == "" {
		log.Debug("export cancelled")
		return "", ErrUserCancelled
	}

	path, err := resolvePath("export", selected)
	if err != nil {
		log.Warn("export path rejected", logging.String("selected", selected), logging.Err(err))
		return "", err
	}

	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		err = &FileError{Op: "export", Path: path, Err: err}
		log.Warn("export write failed", logging.String("path", path), logging.Err(err))
		return "", err
	}

	log.Info("data exported", logging.String("path", path), logging.Int("bytes", len(data)))
	return path, nil
}

// Import asks the user for a file and returns its full contents.
func (a *App) Import(ctx context.Context) (string, error) {
	ctx = logging.WithCallID(ctx, logging.NewCallID())
	log := logging.WithContext(ctx)

	selected, err := a.dialogs.OpenFile(ctx, OpenRequest{
		Title:            "Import Data",
		DefaultDirectory: a.ExportDir(),
		Filters:          []FileFilter{jsonFilter},
	})
	if err != nil {
		err = &HostError{Op: "import", Err: err}
		log.Warn("open dialog failed", logging.Err(err))
		return "", err
	}
	if selected == "" {
		log.Debug("import cancelled")
		return "", ErrUserCancelled
	}

	path, err := resolvePath("import", selected)
	if err != nil {
		log.Warn("import path rejected", logging.String("selected", selected), logging.Err(err))
		return "", err
	}

	content, err := ReadText(path)
	if err != nil {
		log.Warn("import read failed", logging.String("path", path), logging.Err(err))
		return "", err
	}

	log.Info("data imported", logging.String("path", path), logging.Int("bytes", len(content)))
	return content, nil
}

// ReadText reads the whole file at path and checks it is UTF-8 text.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Op: "import", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &FileError{Op: "import", Path: path, Err: ErrNotText}
	}
	return string(data), nil
}

// resolvePath turns a dialog selection into an absolute filesystem path.
// URI-style references (file://, content://) are not filesystem paths.
func resolvePath(op, selected string) (string, error) {
	if strings.Contains(selected, "://") {
		return "", &FileError{Op: op, Path: selected, Err: ErrInvalidPath}
	}
	path, err := filepath.Abs(selected)
	if err != nil {
		return "", &FileError{Op: op, Path: selected, Err: fmt.Errorf("%w: %v", ErrInvalidPath, err)}
	}
	return path, nil
}

func defaultExportName() string {
	return fmt.Sprintf("flowy-backup-%d.json", now().UnixMilli())
}
