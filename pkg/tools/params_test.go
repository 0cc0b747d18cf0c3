package tools

import "testing"

func TestReadString(t *testing.T) {
	args := map[string]any{"item_name": " steel beam ", "num_matches": float64(2)}

	got, err := ReadString(args, "item_name", true)
	if err != nil || got != "steel beam" {
		t.Errorf("got (%q, %v), want trimmed value", got, err)
	}
	if _, err := ReadString(args, "missing", true); err == nil {
		t.Error("required missing parameter should error")
	}
	if got, err := ReadString(args, "missing", false); err != nil || got != "" {
		t.Errorf("optional missing parameter: got (%q, %v)", got, err)
	}
	if _, err := ReadString(args, "num_matches", true); err == nil {
		t.Error("required mistyped parameter should error")
	}
}

func TestReadInt(t *testing.T) {
	args := map[string]any{"num_matches": float64(3), "mode": "lite"}

	if got, err := ReadInt(args, "num_matches", 1); err != nil || got != 3 {
		t.Errorf("got (%d, %v), want 3", got, err)
	}
	if got, err := ReadInt(args, "missing", 1); err != nil || got != 1 {
		t.Errorf("got (%d, %v), want default", got, err)
	}
	if _, err := ReadInt(args, "mode", 1); err == nil {
		t.Error("mistyped parameter should error")
	}
}

func TestReadBoolDefault(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "bool", value: true, want: true},
		{name: "string true", value: "true", want: true},
		{name: "string yes", value: "yes", want: true},
		{name: "string false", value: "false", want: false},
		{name: "number", value: float64(1), want: true},
		{name: "zero", value: float64(0), want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ReadBoolDefault(map[string]any{"k": tc.value}, "k", false); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
	if !ReadBoolDefault(map[string]any{}, "k", true) {
		t.Error("missing parameter should return the default")
	}
}
