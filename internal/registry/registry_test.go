package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/axion/internal/core"
)

type nopFrontend struct {
	id string
}

func (f nopFrontend) ID() string {
	return f.id
}

func (nopFrontend) Init(core.RuntimeConfig) error {
	return nil
}

func (nopFrontend) Render(*core.Screen) error {
	return nil
}

func (nopFrontend) PollInput() ([]core.Action, error) {
	return nil, nil
}

func (nopFrontend) Close() error {
	return nil
}

func TestRegisterCreateList(t *testing.T) {
	Register("test-b", "second", func(Options) Frontend { return nopFrontend{"test-b"} })
	Register("test-a", "first", func(Options) Frontend { return nopFrontend{"test-a"} })

	if !Exists("test-a") || Exists("test-missing") {
		t.Error("Exists() disagrees with registrations")
	}

	f, err := Create("test-a", Options{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if f.ID() != "test-a" {
		t.Errorf("ID() = %q", f.ID())
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test-") {
			ids = append(ids, info.ID)
		}
	}
	if strings.Join(ids, ",") != "test-a,test-b" {
		t.Errorf("List() order = %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-frontend", Options{})
	if err == nil || !strings.Contains(err.Error(), "unknown frontend") {
		t.Errorf("Create(unknown) error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "", func(Options) Frontend { return nopFrontend{"test-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", "", func(Options) Frontend { return nopFrontend{"test-dup"} })
}
