package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockpatch/internal/hero"
	"blockpatch/internal/rewrite"
)

const scenario = "A\n      {/* Hero Section */}\nold-header\ndecor-line-1\ndecor-line-2\n      {/* Section Divider */}\nB\n"

// Helper to create a temporary page file with given content
func createTempPage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Programs.tsx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func expectedScenarioOutput() string {
	// The first line of the old block is the marker comment itself, so
	// everything after it is carried over.
	return "A\n" +
		strings.Join(hero.Programs.Header, "\n") + "\n" +
		"old-header\ndecor-line-1\ndecor-line-2" + "\n" +
		strings.Join(hero.Programs.Footer, "\n") + "\n" +
		"      {/* Section Divider */}\nB\n"
}

func TestApply_EndToEnd(t *testing.T) {
	path := createTempPage(t, scenario)
	p := NewPatcher(NewFileStore(), zerolog.Nop())

	require.NoError(t, p.Apply(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, expectedScenarioOutput(), string(got))
}

func TestApply_KeepsFileMode(t *testing.T) {
	path := createTempPage(t, scenario)
	require.NoError(t, os.Chmod(path, 0600))

	require.NoError(t, NewPatcher(NewFileStore(), zerolog.Nop()).Apply(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestPrepare_PreservesOutsideText(t *testing.T) {
	store := NewInMemoryStore(map[string]string{"page.tsx": scenario})
	p := NewPatcher(store, zerolog.Nop())

	plan, err := p.Prepare("page.tsx")
	require.NoError(t, err)

	assert.Equal(t, "old-header\ndecor-line-1\ndecor-line-2", plan.Decoration)
	assert.True(t, strings.HasPrefix(plan.Output, "A\n"+hero.StartMarker+"\n"))
	assert.True(t, strings.HasSuffix(plan.Output, plan.Block+"      {/* Section Divider */}\nB\n"))
	assert.Contains(t, plan.Block, plan.Decoration)
	assert.Equal(t, 2, plan.StartLine)
	assert.Equal(t, 6, plan.EndLine)
	assert.Empty(t, store.Writes(), "Prepare must not write")
}

func TestApply_FailsClosed(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr error
	}{
		{
			name:    "missing file",
			files:   map[string]string{},
			wantErr: ErrFileNotFound,
		},
		{
			name:    "missing start marker",
			files:   map[string]string{"page.tsx": "A\n      {/* Section Divider */}\n"},
			wantErr: rewrite.ErrMarkerNotFound,
		},
		{
			name:    "missing end marker",
			files:   map[string]string{"page.tsx": "A\n      {/* Hero Section */}\nold\nB\n"},
			wantErr: rewrite.ErrMarkerNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewInMemoryStore(tt.files)
			err := NewPatcher(store, zerolog.Nop()).Apply("page.tsx")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, store.Writes())
		})
	}
}

func TestApply_MissingEndMarkerLeavesFileUntouched(t *testing.T) {
	content := "A\n      {/* Hero Section */}\nold\nB\n"
	path := createTempPage(t, content)

	err := NewPatcher(NewFileStore(), zerolog.Nop()).Apply(path)
	require.ErrorIs(t, err, rewrite.ErrMarkerNotFound)

	got, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, content, string(got))
}

func TestApply_MissingFileOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.tsx")
	err := NewPatcher(NewFileStore(), zerolog.Nop()).Apply(path)
	require.ErrorIs(t, err, ErrFileNotFound)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCommit_WritesOnce(t *testing.T) {
	store := NewInMemoryStore(map[string]string{"page.tsx": scenario})
	p := NewPatcher(store, zerolog.Nop())

	plan, err := p.Prepare("page.tsx")
	require.NoError(t, err)
	require.NoError(t, p.Commit(plan))

	assert.Equal(t, []string{"page.tsx"}, store.Writes())
	got, err := store.Read("page.tsx")
	require.NoError(t, err)
	assert.Equal(t, expectedScenarioOutput(), got)
}
