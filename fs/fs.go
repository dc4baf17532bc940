package fs

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

const rootName = "root"

var (
	ErrNotFound      = errors.New("not found")
	ErrNotADirectory = errors.New("not a directory")
	ErrAlreadyExists = errors.New("already exists")
	ErrNotEmpty      = errors.New("is not empty")
)

// FileSystem is a volatile tree of files and directories rooted at "/".
// Mutations take the write lock; the tree itself is not safe for
// concurrent mutation otherwise.
type FileSystem struct {
	mu   sync.RWMutex
	root *Directory
}

// New returns a file system holding an empty root directory.
func New() *FileSystem {
	return &FileSystem{root: &Directory{Name: rootName}}
}

// FindDirectory resolves path to a directory node. Empty segments are
// skipped, so "", "/", "//a/" and "a" are all valid.
func (f *FileSystem) FindDirectory(path string) (*Directory, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.findDirectory(path)
}

func (f *FileSystem) findDirectory(path string) (*Directory, error) {
	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	current := f.root
	for i, part := range parts {
		next, isFile := current.childDirectory(part)
		if next != nil {
			current = next
			continue
		}
		// a file in the middle of the path cannot be descended into; a
		// file as the last segment is just a missing directory
		if isFile && i < len(parts)-1 {
			return nil, fmt.Errorf("'%s' is %w", part, ErrNotADirectory)
		}
		return nil, fmt.Errorf("directory '%s' %w", path, ErrNotFound)
	}
	return current, nil
}

// CreateDirectory appends an empty directory called name under path.
// Only directories are checked for a name collision.
func (f *FileSystem) CreateDirectory(path, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	parent, err := f.findDirectory(path)
	if err != nil {
		return err
	}
	for _, child := range parent.Children {
		if d, ok := child.(*Directory); ok && d.Name == name {
			return fmt.Errorf("a directory with the name '%s' %w", name, ErrAlreadyExists)
		}
	}
	parent.Children = append(parent.Children, &Directory{Name: name})
	return nil
}

// CreateFile appends a file called name under path. Only files are
// checked for a name collision.
func (f *FileSystem) CreateFile(path, name, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	parent, err := f.findDirectory(path)
	if err != nil {
		return err
	}
	for _, child := range parent.Children {
		if file, ok := child.(*File); ok && file.Name == name {
			return fmt.Errorf("a file with the name '%s' %w", name, ErrAlreadyExists)
		}
	}
	parent.Children = append(parent.Children, &File{Name: name, Content: content})
	return nil
}

// ReadFile returns the content of the file called name under path.
func (f *FileSystem) ReadFile(path, name string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	dir, err := f.findDirectory(path)
	if err != nil {
		return "", err
	}
	for _, child := range dir.Children {
		if file, ok := child.(*File); ok && file.Name == name {
			return file.Content, nil
		}
	}
	return "", fmt.Errorf("file '%s' %w in '%s'", name, ErrNotFound, path)
}

// ListDirectory returns the child names of path in insertion order.
// Directory names carry a leading "/".
func (f *FileSystem) ListDirectory(path string) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	dir, err := f.findDirectory(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(dir.Children))
	for _, child := range dir.Children {
		switch n := child.(type) {
		case *File:
			names = append(names, n.Name)
		case *Directory:
			names = append(names, "/"+n.Name)
		}
	}
	return names, nil
}

// RenameNode renames the child oldName of path to newName. newName must
// not be used by any sibling, file or directory. A missing oldName is
// not an error and leaves the tree untouched.
func (f *FileSystem) RenameNode(path, oldName, newName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	parent, err := f.findDirectory(path)
	if err != nil {
		return err
	}
	if parent.index(newName) >= 0 {
		return fmt.Errorf("a node with the name '%s' %w", newName, ErrAlreadyExists)
	}
	i := parent.index(oldName)
	if i < 0 {
		return nil
	}
	switch n := parent.Children[i].(type) {
	case *File:
		n.Name = newName
	case *Directory:
		n.Name = newName
	}
	return nil
}

// DeleteNode removes the child called name from path. Directories must
// be empty. Remaining siblings keep their order.
func (f *FileSystem) DeleteNode(path, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	parent, err := f.findDirectory(path)
	if err != nil {
		return err
	}
	i := parent.index(name)
	if i < 0 {
		return fmt.Errorf("node '%s' %w in '%s'", name, ErrNotFound, path)
	}
	if d, ok := parent.Children[i].(*Directory); ok && len(d.Children) > 0 {
		return fmt.Errorf("directory '%s' %w", name, ErrNotEmpty)
	}
	parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
	return nil
}

// Stats counts every file and directory below the root. The root itself
// is not counted.
func (f *FileSystem) Stats() (files, dirs int) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return count(f.root)
}

func count(dir *Directory) (files, dirs int) {
	for _, child := range dir.Children {
		switch n := child.(type) {
		case *File:
			files++
		case *Directory:
			dirs++
			f, d := count(n)
			files += f
			dirs += d
		}
	}
	return files, dirs
}
