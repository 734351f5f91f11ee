package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Caption, Mono} {
		if !Loaded(name) || name.Get() == nil {
			t.Errorf("font %s not loaded", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("expected parse error")
	}
	if Loaded("broken") {
		t.Error("expected no face for a failed load")
	}
}
