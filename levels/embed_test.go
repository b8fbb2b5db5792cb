package levels

import "testing"

func TestBoolProp(t *testing.T) {
	tests := []struct {
		name        string
		props       map[string]interface{}
		wantValue   bool
		wantPresent bool
		wantOK      bool
	}{
		{"absent", nil, false, false, false},
		{"true", map[string]interface{}{"is_open": true}, true, true, true},
		{"false", map[string]interface{}{"is_open": false}, false, true, true},
		{"wrong_type", map[string]interface{}{"is_open": "yes"}, false, true, false},
		{"number", map[string]interface{}{"is_open": 1.0}, false, true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, present, ok := Entity{Props: tc.props}.BoolProp("is_open")
			if v != tc.wantValue || present != tc.wantPresent || ok != tc.wantOK {
				t.Fatalf("BoolProp = %v,%v,%v want %v,%v,%v", v, present, ok, tc.wantValue, tc.wantPresent, tc.wantOK)
			}
		})
	}
}

func TestEmbeddedLevelsParse(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no embedded levels")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			lvl, err := LoadLevelFromFS(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			doors := 0
			for _, e := range lvl.Entities {
				if e.Type == "Door" {
					doors++
				}
			}
			if doors == 0 {
				t.Fatalf("level %s has no doors", name)
			}
		})
	}
}

func TestParseRejectsShortLayer(t *testing.T) {
	_, err := Parse([]byte(`{"width":2,"height":2,"layers":[[1,1,1]]}`))
	if err == nil {
		t.Fatal("expected error for short layer")
	}
}

func TestCleanLevelPath(t *testing.T) {
	for in, want := range map[string]string{
		"dungeon":          "dungeon.json",
		"dungeon.json":     "dungeon.json",
		"levels/test.json": "test.json",
	} {
		if got := cleanLevelPath(in); got != want {
			t.Fatalf("cleanLevelPath(%q) = %q, want %q", in, got, want)
		}
	}
}
