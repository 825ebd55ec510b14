package components_test

import (
	"testing"

	"github.com/go-vitrine/vitrine/pkg/components"
	"github.com/go-vitrine/vitrine/pkg/option"
)

func TestConfigDefaults(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{})
	m := cb.ConfigMap()

	checks := map[string]any{
		"type":       "checkbox",
		"value":      false,
		"label":      "",
		"show_label": true,
		"container":  true,
		"min_width":  160,
		"visible":    true,
	}
	for key, want := range checks {
		if got := m[key]; got != want {
			t.Errorf("config[%q] = %v, want %v", key, got, want)
		}
	}
	if _, present := m["interactive"]; present {
		t.Error("undecided interactive flag should be omitted from config")
	}
	if _, present := m["every"]; present {
		t.Error("zero cadence should be omitted from config")
	}
}

func TestConfigExplicitZeroBeatsDefault(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{
		Config: components.Config{
			Visible:   option.Some(false),
			Container: option.Some(false),
			MinWidth:  option.Some(0),
		},
	})
	m := cb.ConfigMap()
	if m["visible"] != false || m["container"] != false || m["min_width"] != 0 {
		t.Errorf("explicit zero values lost: visible=%v container=%v min_width=%v",
			m["visible"], m["container"], m["min_width"])
	}
}

func TestInteractiveInference(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{})
	if _, decided := cb.Interactive(); decided {
		t.Fatal("interactive should start undecided when unconfigured")
	}

	cb.ResolveInteractive(true)
	v, decided := cb.Interactive()
	if !decided || !v {
		t.Errorf("after ResolveInteractive(true): (%v, %v)", v, decided)
	}

	// A later resolution must not override the decision.
	cb.ResolveInteractive(false)
	if v, _ := cb.Interactive(); !v {
		t.Error("resolution should be sticky")
	}
}

func TestInteractiveExplicitWins(t *testing.T) {
	cb := components.NewCheckbox(components.CheckboxConfig{
		Config: components.Config{Interactive: option.Some(false)},
	})
	cb.ResolveInteractive(true)
	v, decided := cb.Interactive()
	if !decided || v {
		t.Errorf("explicit interactive=false overridden: (%v, %v)", v, decided)
	}
}

func TestComponentIDsAreUnique(t *testing.T) {
	a := components.NewCheckbox(components.CheckboxConfig{})
	b := components.NewCheckbox(components.CheckboxConfig{})
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("IDs should be unique and non-empty: %q, %q", a.ID(), b.ID())
	}
}
