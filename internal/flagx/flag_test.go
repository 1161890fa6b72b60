package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
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
			args:    []string{"-u", "http://localhost:8080", "-x", "junk"},
			allowed: []string{"-u"},
			want:    []string{"-u", "http://localhost:8080"},
		},
		{
			name:    "equals form",
			args:    []string{"--api-url=http://localhost:8080", "--other=1"},
			allowed: []string{"--api-url"},
			want:    []string{"--api-url=http://localhost:8080"},
		},
		{
			name:    "flag without value",
			args:    []string{"-v", "-u", "x"},
			allowed: []string{"-v"},
			want:    []string{"-v"},
		},
		{
			name:    "value looking like flag is not consumed",
			args:    []string{"-u", "-t"},
			allowed: []string{"-u"},
			want:    []string{"-u"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "1", "-b"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"lostlink", "-c", "conf.json", "-u", "http://localhost"}
	require.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"lostlink", "--config=other.json"}
	require.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"lostlink"}
	require.Equal(t, "", JsonConfigFlags())
}
