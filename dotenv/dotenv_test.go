package dotenv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "basic",
			input: "FOO=bar\nBAZ=qux\n",
			want:  map[string]string{"FOO": "bar", "BAZ": "qux"},
		},
		{
			name:  "trims key and value",
			input: "  FOO =  bar  \n",
			want:  map[string]string{"FOO": "bar"},
		},
		{
			name:  "skips comments and blanks",
			input: "# a comment\n\n   # indented comment\nFOO=bar\n",
			want:  map[string]string{"FOO": "bar"},
		},
		{
			name:  "skips lines without separator",
			input: "NOTAKEY\nFOO=bar\n",
			want:  map[string]string{"FOO": "bar"},
		},
		{
			name:  "splits at first separator only",
			input: "URL=postgres://u:p@host/db?sslmode=disable\n",
			want:  map[string]string{"URL": "postgres://u:p@host/db?sslmode=disable"},
		},
		{
			name:  "empty value allowed",
			input: "EMPTY=\n",
			want:  map[string]string{"EMPTY": ""},
		},
		{
			name:  "empty key skipped",
			input: "=value\n",
			want:  map[string]string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(strings.NewReader(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyDoesNotOverrideExisting(t *testing.T) {
	t.Setenv("TRADESCOPE_TEST_SET", "original")

	Apply(map[string]string{"TRADESCOPE_TEST_SET": "from-file"})

	assert.Equal(t, "original", os.Getenv("TRADESCOPE_TEST_SET"))
}

func TestApplyKeepsExistingEmptyValue(t *testing.T) {
	t.Setenv("TRADESCOPE_TEST_EMPTY", "")

	Apply(map[string]string{"TRADESCOPE_TEST_EMPTY": "from-file"})

	v, exists := os.LookupEnv("TRADESCOPE_TEST_EMPTY")
	assert.True(t, exists)
	assert.Equal(t, "", v)
}

func TestApplySetsUnsetKeys(t *testing.T) {
	// t.Setenv registers cleanup; unset right after so the key is absent.
	t.Setenv("TRADESCOPE_TEST_UNSET", "x")
	require.NoError(t, os.Unsetenv("TRADESCOPE_TEST_UNSET"))

	Apply(map[string]string{"TRADESCOPE_TEST_UNSET": "from-file"})

	assert.Equal(t, "from-file", os.Getenv("TRADESCOPE_TEST_UNSET"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# test env\nTRADESCOPE_TEST_A=alpha\nTRADESCOPE_TEST_B=beta\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("TRADESCOPE_TEST_A", "preset")
	t.Setenv("TRADESCOPE_TEST_B", "x")
	require.NoError(t, os.Unsetenv("TRADESCOPE_TEST_B"))

	ok := Load(path)

	assert.True(t, ok)
	assert.Equal(t, "preset", os.Getenv("TRADESCOPE_TEST_A"), "pre-existing environment wins")
	assert.Equal(t, "beta", os.Getenv("TRADESCOPE_TEST_B"))
}

func TestLoadMissingFileIsNoOp(t *testing.T) {
	t.Setenv("TRADESCOPE_TEST_KEEP", "kept")

	ok := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))

	assert.False(t, ok)
	assert.Equal(t, "kept", os.Getenv("TRADESCOPE_TEST_KEEP"))
}

func TestReadMissingFile(t *testing.T) {
	t.Parallel()

	vars, ok := Read(filepath.Join(t.TempDir(), "nope.env"))
	assert.False(t, ok)
	assert.Empty(t, vars)
}
