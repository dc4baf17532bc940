package fs

import (
	"errors"
	"reflect"
	"testing"
)

func newTree(t *testing.T) *FileSystem {
	t.Helper()
	f := New()
	if err := f.CreateDirectory("/", "docs"); err != nil {
		t.Fatalf("CreateDirectory(docs): %v", err)
	}
	if err := f.CreateDirectory("/docs", "notes"); err != nil {
		t.Fatalf("CreateDirectory(docs/notes): %v", err)
	}
	if err := f.CreateFile("/docs", "readme", "hi"); err != nil {
		t.Fatalf("CreateFile(docs/readme): %v", err)
	}
	return f
}

func TestFindDirectoryCollapsesSlashes(t *testing.T) {
	f := newTree(t)

	tests := []struct {
		path string
		want string
	}{
		{"", "root"},
		{"/", "root"},
		{"//", "root"},
		{"docs", "docs"},
		{"/docs", "docs"},
		{"//docs/", "docs"},
		{"docs/notes", "notes"},
		{"/docs//notes/", "notes"},
		{"///docs///notes///", "notes"},
	}
	for _, tt := range tests {
		dir, err := f.FindDirectory(tt.path)
		if err != nil {
			t.Errorf("FindDirectory(%q) error: %v", tt.path, err)
			continue
		}
		if dir.Name != tt.want {
			t.Errorf("FindDirectory(%q) = %q, want %q", tt.path, dir.Name, tt.want)
		}
	}
}

func TestFindDirectoryErrors(t *testing.T) {
	f := newTree(t)

	tests := []struct {
		path string
		want error
	}{
		{"/missing", ErrNotFound},
		{"/docs/missing", ErrNotFound},
		{"/docs/readme", ErrNotFound},
		{"/docs/readme/", ErrNotFound},
		{"/docs/readme/deeper", ErrNotADirectory},
	}
	for _, tt := range tests {
		_, err := f.FindDirectory(tt.path)
		if !errors.Is(err, tt.want) {
			t.Errorf("FindDirectory(%q) error = %v, want %v", tt.path, err, tt.want)
		}
	}
}

func TestCreateThenList(t *testing.T) {
	f := New()
	if err := f.CreateDirectory("/", "docs"); err != nil {
		t.Fatal(err)
	}
	if err := f.CreateFile("/", "a.txt", ""); err != nil {
		t.Fatal(err)
	}
	if err := f.CreateDirectory("/", "bin"); err != nil {
		t.Fatal(err)
	}

	got, err := f.ListDirectory("/")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/docs", "a.txt", "/bin"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListDirectory(/) = %q, want %q", got, want)
	}
}

func TestListEmptyDirectory(t *testing.T) {
	f := New()
	got, err := f.ListDirectory("/")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("ListDirectory(/) = %q, want empty", got)
	}
}

func TestCreateUniquenessIsPerKind(t *testing.T) {
	f := New()
	if err := f.CreateDirectory("/", "x"); err != nil {
		t.Fatal(err)
	}
	if err := f.CreateDirectory("/", "x"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("second CreateDirectory(x) error = %v, want ErrAlreadyExists", err)
	}
	// a file may share the name of a directory
	if err := f.CreateFile("/", "x", "body"); err != nil {
		t.Errorf("CreateFile(x) next to directory x: %v", err)
	}
	if err := f.CreateFile("/", "x", "other"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("second CreateFile(x) error = %v, want ErrAlreadyExists", err)
	}

	got, _ := f.ListDirectory("/")
	want := []string{"/x", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListDirectory(/) = %q, want %q", got, want)
	}
}

func TestCreateUnderMissingParent(t *testing.T) {
	f := New()
	if err := f.CreateFile("/nope", "a", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("CreateFile under missing parent error = %v, want ErrNotFound", err)
	}
	if err := f.CreateDirectory("/nope", "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("CreateDirectory under missing parent error = %v, want ErrNotFound", err)
	}
}

func TestReadFileRoundTrip(t *testing.T) {
	f := New()
	if err := f.CreateFile("/", "a", "hello"); err != nil {
		t.Fatal(err)
	}
	got, err := f.ReadFile("/", "a")
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("ReadFile(/, a) = %q, want %q", got, "hello")
	}
}

func TestReadFileErrors(t *testing.T) {
	f := newTree(t)

	if _, err := f.ReadFile("/", "readme"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadFile(/, readme) error = %v, want ErrNotFound", err)
	}
	// a directory of that name is not a file
	if _, err := f.ReadFile("/", "docs"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadFile(/, docs) error = %v, want ErrNotFound", err)
	}
	if _, err := f.ReadFile("/docs/readme", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadFile(/docs/readme, x) error = %v, want ErrNotFound", err)
	}
	if _, err := f.ReadFile("/docs/readme/deeper", "x"); !errors.Is(err, ErrNotADirectory) {
		t.Errorf("ReadFile(/docs/readme/deeper, x) error = %v, want ErrNotADirectory", err)
	}
	if got, err := f.ReadFile("docs", "readme"); err != nil || got != "hi" {
		t.Errorf("ReadFile(docs, readme) = %q, %v", got, err)
	}
}

func TestRenameNode(t *testing.T) {
	f := New()
	f.CreateFile("/", "a", "1")
	f.CreateDirectory("/", "d")

	if err := f.RenameNode("/", "a", "b"); err != nil {
		t.Fatalf("RenameNode(a, b): %v", err)
	}
	if got, err := f.ReadFile("/", "b"); err != nil || got != "1" {
		t.Errorf("ReadFile(b) after rename = %q, %v", got, err)
	}

	if err := f.RenameNode("/", "d", "e"); err != nil {
		t.Fatalf("RenameNode(d, e): %v", err)
	}
	got, _ := f.ListDirectory("/")
	if want := []string{"b", "/e"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ListDirectory(/) = %q, want %q", got, want)
	}
}

func TestRenameCollidesWithAnyKind(t *testing.T) {
	f := New()
	f.CreateFile("/", "a", "")
	f.CreateFile("/", "f", "")
	f.CreateDirectory("/", "d")

	if err := f.RenameNode("/", "a", "d"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("RenameNode(a, d) error = %v, want ErrAlreadyExists", err)
	}
	if err := f.RenameNode("/", "a", "f"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("RenameNode(a, f) error = %v, want ErrAlreadyExists", err)
	}
}

func TestRenameMissingIsNoop(t *testing.T) {
	f := New()
	f.CreateFile("/", "a", "")

	if err := f.RenameNode("/", "ghost", "b"); err != nil {
		t.Errorf("RenameNode(ghost, b) error = %v, want nil", err)
	}
	got, _ := f.ListDirectory("/")
	if want := []string{"a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ListDirectory(/) = %q, want %q", got, want)
	}
}

func TestDeleteNode(t *testing.T) {
	f := New()
	f.CreateFile("/", "a", "")
	f.CreateDirectory("/", "b")
	f.CreateFile("/", "c", "")
	f.CreateDirectory("/", "d")

	if err := f.DeleteNode("/", "b"); err != nil {
		t.Fatalf("DeleteNode(b): %v", err)
	}
	if err := f.DeleteNode("/", "c"); err != nil {
		t.Fatalf("DeleteNode(c): %v", err)
	}
	got, _ := f.ListDirectory("/")
	if want := []string{"a", "/d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ListDirectory(/) = %q, want %q", got, want)
	}
}

func TestDeleteNonEmptyDirectory(t *testing.T) {
	f := newTree(t)

	if err := f.DeleteNode("/", "docs"); !errors.Is(err, ErrNotEmpty) {
		t.Errorf("DeleteNode(docs) error = %v, want ErrNotEmpty", err)
	}
	if _, err := f.FindDirectory("/docs"); err != nil {
		t.Errorf("docs disappeared after failed delete: %v", err)
	}

	if err := f.DeleteNode("/docs", "notes"); err != nil {
		t.Fatalf("DeleteNode(docs/notes): %v", err)
	}
	if err := f.DeleteNode("/docs", "readme"); err != nil {
		t.Fatalf("DeleteNode(docs/readme): %v", err)
	}
	if err := f.DeleteNode("/", "docs"); err != nil {
		t.Errorf("DeleteNode(docs) once empty: %v", err)
	}
}

func TestDeleteMissing(t *testing.T) {
	f := New()
	if err := f.DeleteNode("/", "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteNode(ghost) error = %v, want ErrNotFound", err)
	}
}

func TestStats(t *testing.T) {
	f := newTree(t)
	files, dirs := f.Stats()
	if files != 1 || dirs != 2 {
		t.Errorf("Stats() = %d files, %d dirs, want 1, 2", files, dirs)
	}
}

func TestErrorMessages(t *testing.T) {
	f := newTree(t)

	tests := []struct {
		err  error
		want string
	}{
		{f.CreateDirectory("/", "docs"), "a directory with the name 'docs' already exists"},
		{f.DeleteNode("/", "docs"), "directory 'docs' is not empty"},
		{f.DeleteNode("/", "ghost"), "node 'ghost' not found in '/'"},
		{f.CreateFile("/x", "a", ""), "directory '/x' not found"},
		{f.CreateFile("/docs/readme", "a", ""), "directory '/docs/readme' not found"},
		{f.CreateFile("/docs/readme/x", "a", ""), "'readme' is not a directory"},
	}
	for _, tt := range tests {
		if tt.err == nil || tt.err.Error() != tt.want {
			t.Errorf("error = %v, want %q", tt.err, tt.want)
		}
	}
}

func TestNameOf(t *testing.T) {
	if got := NameOf(&File{Name: "a"}); got != "a" {
		t.Errorf("NameOf(file) = %q", got)
	}
	if got := NameOf(&Directory{Name: "d"}); got != "d" {
		t.Errorf("NameOf(dir) = %q", got)
	}
}
