package preview

import (
	"errors"
	"testing"

	"github.com/inamate/motion/internal/document"
)

func TestStorePutAndList(t *testing.T) {
	s := NewStore()

	summary, replaced, err := s.Put(document.NewSampleDocument())
	if err != nil {
		t.Fatal(err)
	}
	if replaced {
		t.Error("first Put reported a replacement")
	}
	if summary.Name != "Sample" || summary.Objects != 4 || summary.Frames != 96 {
		t.Errorf("summary = %+v", summary)
	}

	other := &document.Document{Scene: document.Scene{Name: "Another"}}
	if _, _, err := s.Put(other); err != nil {
		t.Fatal(err)
	}

	list := s.List()
	if len(list) != 2 || list[0].Name != "Another" || list[1].Name != "Sample" {
		t.Errorf("List = %+v", list)
	}
}

func TestStoreReplace(t *testing.T) {
	s := NewStore()
	doc := document.NewSampleDocument()
	if _, _, err := s.Put(doc); err != nil {
		t.Fatal(err)
	}

	again := document.NewSampleDocument()
	again.Scene.ID = doc.Scene.ID
	again.Scene.Name = "Renamed"
	_, replaced, err := s.Put(again)
	if err != nil {
		t.Fatal(err)
	}
	if !replaced {
		t.Error("expected replacement")
	}
	got, err := s.Get(doc.Scene.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Scene.Name != "Renamed" {
		t.Errorf("Name = %q, want Renamed", got.Scene.Name)
	}
}

func TestStoreRejectsBrokenReferences(t *testing.T) {
	doc := &document.Document{Objects: []document.Object{{
		Name:   "a",
		Type:   document.ObjectTypeCircle,
		Radius: 1,
		Actions: []document.Action{{
			Start:       1,
			End:         2,
			Transitions: []document.Transition{{Type: document.TransitionTranslation, To: "missing"}},
		}},
	}}}

	if _, _, err := NewStore().Put(doc); !errors.Is(err, document.ErrInvalid) {
		t.Errorf("Put err = %v, want ErrInvalid", err)
	}
}

func TestStoreBuildUnknown(t *testing.T) {
	if _, err := NewStore().Build("scene_missing"); !errors.Is(err, ErrSceneNotFound) {
		t.Errorf("Build err = %v, want ErrSceneNotFound", err)
	}
}
