package fs

// Node is either a *File or a *Directory.
type Node interface {
	nodeName() string
}

type File struct {
	Name    string
	Content string
}

type Directory struct {
	Name     string
	Children []Node
}

func (f *File) nodeName() string      { return f.Name }
func (d *Directory) nodeName() string { return d.Name }

// NameOf returns the name of a node of either kind.
func NameOf(n Node) string {
	return n.nodeName()
}

// childDirectory returns the child directory called name. isFile
// reports that no directory matched but a file of that name exists.
func (d *Directory) childDirectory(name string) (dir *Directory, isFile bool) {
	for _, child := range d.Children {
		switch n := child.(type) {
		case *Directory:
			if n.Name == name {
				return n, false
			}
		case *File:
			if n.Name == name {
				isFile = true
			}
		}
	}
	return nil, isFile
}

// index returns the position of the first child called name, of any
// kind, or -1.
func (d *Directory) index(name string) int {
	for i, child := range d.Children {
		if NameOf(child) == name {
			return i
		}
	}
	return -1
}
