package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStorage_Save_KeepsExtension(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskStorage(dir)

	stored, err := s.Save(strings.NewReader("fake image bytes"), "avatar.png")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stored, ".png"))
	assert.NotEqual(t, "avatar.png", stored)

	data, err := os.ReadFile(filepath.Join(dir, stored))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestDiskStorage_Save_UniqueNames(t *testing.T) {
	s := NewDiskStorage(t.TempDir())

	first, err := s.Save(strings.NewReader("a"), "photo.jpg")
	require.NoError(t, err)

	second, err := s.Save(strings.NewReader("b"), "photo.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDiskStorage_Save_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	s := NewDiskStorage(dir)

	_, err := s.Save(strings.NewReader("content"), "doc.pdf")

	require.NoError(t, err)
}
