package gosorted

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".gosorted.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %s", err)
	}

	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `checks:
  - group
  - switch
require-marker: false
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %s", err)
	}

	if !cfg.Enabled(KindGroup) || !cfg.Enabled(KindSwitch) {
		t.Fatal("group and switch kinds were expected to be enabled")
	}
	if cfg.Enabled(KindStruct) || cfg.Enabled(KindFile) {
		t.Fatal("struct and file kinds were expected to be disabled")
	}
	if cfg.MarkerRequired() {
		t.Fatal("marker requirement was expected to be off")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load empty config: %s", err)
	}

	for _, k := range []Kind{KindGroup, KindStruct, KindFile, KindSwitch} {
		if !cfg.Enabled(k) {
			t.Fatalf("kind %s was expected to be enabled by default", k)
		}
	}
	if !cfg.MarkerRequired() {
		t.Fatal("marker requirement was expected to be on by default")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "wildcard-policy: first\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("an unknown key was expected to be rejected")
	}
}

func TestLoadConfigRejectsUnknownKind(t *testing.T) {
	path := writeConfig(t, "checks: [interface]\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("an unknown container kind was expected to be rejected")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("a missing file was expected to be an error")
	}
}

func TestKindText(t *testing.T) {
	for _, k := range []Kind{KindGroup, KindStruct, KindFile, KindSwitch} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("marshal kind %d: %s", int(k), err)
		}

		var back Kind
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal kind %q: %s", text, err)
		}
		if back != k {
			t.Fatalf("kind %s did not round-trip, got %s", k, back)
		}
	}

	if _, err := kindInvalid.MarshalText(); err == nil {
		t.Fatal("marshaling the invalid kind was expected to fail")
	}
}
