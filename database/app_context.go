package database

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AppContext resolves where the application keeps its private databases.
type AppContext interface {
	DatabasePath(name string) (string, error)
}

// DirContext stores databases as files directly under Dir.
type DirContext struct {
	Dir string
}

// NewDirContext keeps databases under dir
func NewDirContext(dir string) *DirContext {
	return &DirContext{Dir: dir}
}

// DatabasePath joins name onto Dir. A nil context or blank Dir yields
// ErrInvalidContext, and a name containing a path separator is rejected.
func (c *DirContext) DatabasePath(name string) (string, error) {
	if c == nil || strings.TrimSpace(c.Dir) == "" {
		return "", ErrInvalidContext
	}
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: database name %q", ErrInvalidArgument, name)
	}
	return filepath.Join(c.Dir, name), nil
}

// resolvePath rejects a nil context before asking it for a path
func resolvePath(appCtx AppContext, name string) (string, error) {
	if appCtx == nil {
		return "", ErrInvalidContext
	}
	return appCtx.DatabasePath(name)
}
