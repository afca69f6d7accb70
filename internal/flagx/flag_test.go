package flagx

import (
	"os"
	"reflect"
	"testing"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-d", "dsn", "-x", "other"},
			allowed: []string{"-d"},
			want:    []string{"-d", "dsn"},
		},
		{
			name:    "equals form",
			args:    []string{"--database=dsn", "-x=1"},
			allowed: []string{"--database"},
			want:    []string{"--database=dsn"},
		},
		{
			name:    "flag without value before another flag",
			args:    []string{"-v", "-d", "dsn"},
			allowed: []string{"-v", "-d"},
			want:    []string{"-v", "-d", "dsn"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-d", "dsn"},
			allowed: []string{},
			want:    []string{},
		},
		{
			name:    "empty args",
			args:    []string{},
			allowed: []string{"-d"},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowed)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("FilterArgs(%v, %v) = %v, want %v", tc.args, tc.allowed, got, tc.want)
			}
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"app", "-c", "conf.json", "-d", "dsn"}
	if got := JsonConfigFlags(); got != "conf.json" {
		t.Fatalf("JsonConfigFlags() = %q, want %q", got, "conf.json")
	}

	os.Args = []string{"app", "-d", "dsn"}
	if got := JsonConfigFlags(); got != "" {
		t.Fatalf("JsonConfigFlags() = %q, want empty", got)
	}
}
