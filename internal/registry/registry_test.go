package registry

import (
	"strings"
	"testing"
)

type stubBackend struct {
	name string
	runs int
}

func (b *stubBackend) Name() string  { return b.name }
func (b *stubBackend) Title() string { return "Stub " + b.name }

func (b *stubBackend) Run(RunOptions) error {
	b.runs++
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-b", func() Backend { return &stubBackend{name: "test-b"} })
	Register("test-a", func() Backend { return &stubBackend{name: "test-a"} })

	if !Exists("test-a") || Exists("test-missing") {
		t.Fatal("Exists() disagrees with registrations")
	}

	var names []string
	for _, info := range List() {
		if strings.HasPrefix(info.Name, "test-") {
			names = append(names, info.Name)
		}
	}
	if len(names) != 2 || names[0] != "test-a" || names[1] != "test-b" {
		t.Errorf("List() = %v, want sorted [test-a test-b]", names)
	}

	b, err := Create("test-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if b.Title() != "Stub test-a" {
		t.Errorf("Title() = %q", b.Title())
	}
	if err := b.Run(RunOptions{}); err != nil {
		t.Errorf("Run() failed: %v", err)
	}

	if _, err := Create("test-missing"); err == nil {
		t.Error("Create() of unknown backend returned no error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Backend { return &stubBackend{name: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test-dup", func() Backend { return &stubBackend{name: "test-dup"} })
}
