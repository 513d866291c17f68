package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediarepo/internal/domain"
)

func TestSegmentPathServesPreparedSegment(t *testing.T) {
	outputDir := t.TempDir()
	fileUUID := uuid.New().String()

	segmentDir := filepath.Join(outputDir, fileUUID)
	require.NoError(t, os.MkdirAll(segmentDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(segmentDir, "segment_0.ts"), []byte("ts"), 0644))

	svc := &VideoService{outputDir: outputDir}

	path, err := svc.SegmentPath(fileUUID, "segment_0.ts")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(segmentDir, "segment_0.ts"), path)

	_, err = svc.SegmentPath(fileUUID, "missing.ts")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Оба параметра приходят из URL: за пределы каталога выйти нельзя
func TestSegmentPathRejectsTraversal(t *testing.T) {
	baseDir := t.TempDir()
	outputDir := filepath.Join(baseDir, "videos")
	require.NoError(t, os.MkdirAll(outputDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "secret.txt"), []byte("x"), 0644))

	svc := &VideoService{outputDir: outputDir}

	_, err := svc.SegmentPath("..", "secret.txt")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.SegmentPath("not-a-uuid", "segment_0.ts")
	assert.ErrorIs(t, err, domain.ErrValidation)

	fileUUID := uuid.New().String()
	require.NoError(t, os.MkdirAll(filepath.Join(outputDir, fileUUID), 0755))

	_, err = svc.SegmentPath(fileUUID, "../../secret.txt")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.SegmentPath(fileUUID, "sub/segment_0.ts")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
