package registry

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/joystick-maze/internal/config"
	"github.com/vovakirdan/joystick-maze/internal/core"
)

type stubFrontend struct {
	id  string
	ran bool
}

func (s *stubFrontend) ID() string    { return s.id }
func (s *stubFrontend) Title() string { return "Stub " + s.id }
func (s *stubFrontend) Run(context.Context, config.Config, core.RuntimeConfig, *log.Logger) error {
	s.ran = true
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Frontend { return &stubFrontend{id: "stub-b"} })
	Register("stub-a", func() Frontend { return &stubFrontend{id: "stub-a"} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered frontends should exist")
	}
	if Exists("missing") {
		t.Error("unregistered frontend should not exist")
	}

	list := List()
	var ids []string
	for _, info := range list {
		if info.ID == "stub-a" || info.ID == "stub-b" {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub "+info.ID)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "stub-a" {
		t.Errorf("List() should be sorted by ID, got %v", ids)
	}

	fe, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := fe.Run(context.Background(), config.DefaultConfig(), core.DefaultConfig(), log.Default()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !fe.(*stubFrontend).ran {
		t.Error("Run should reach the created frontend")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Error("expected error for unknown frontend")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })
}
