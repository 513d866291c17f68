package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xfrr/goffmpeg/transcoder"

	"mediarepo/internal/domain"
	"mediarepo/internal/identity"
	"mediarepo/internal/service/s3"
)

// VideoService готовит HLS-плейлисты для потокового просмотра видеофайлов
// репозитория. Результат кешируется на диске по uuid файла.
type VideoService struct {
	files     FileRecordStore
	repos     RepositoryStore
	linkRes   LinkResolver
	s3Client  s3.Storage
	outputDir string
}

func NewVideoService(
	files FileRecordStore,
	repos RepositoryStore,
	linkRes LinkResolver,
	s3Client s3.Storage,
	outputDir string,
) (*VideoService, error) {
	// Проверяем наличие ffmpeg
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("ffmpeg not found: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &VideoService{
		files:     files,
		repos:     repos,
		linkRes:   linkRes,
		s3Client:  s3Client,
		outputDir: outputDir,
	}, nil
}

// PrepareStreamingVideo скачивает видео из S3 и нарезает его в HLS.
// Повторный запрос того же файла отдает готовый плейлист.
func (s *VideoService) PrepareStreamingVideo(ctx context.Context, fileID int64, shareToken string, caller *identity.Caller) (string, error) {
	file, err := s.authorizeVideo(ctx, fileID, shareToken, caller)
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(file.MIMEType, "video/") {
		return "", fmt.Errorf("%w: file %d is not a video", domain.ErrValidation, fileID)
	}

	outputPath := filepath.Join(s.outputDir, file.UUID.String())
	playlistPath := filepath.Join(outputPath, "playlist.m3u8")

	if _, err := os.Stat(playlistPath); err == nil {
		log.Printf("[VideoService] Found existing playlist for file %d", fileID)
		return playlistPath, nil
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	object, err := s.s3Client.GetObject(ctx, file.Name)
	if err != nil {
		return "", fmt.Errorf("failed to get video from storage: %w", err)
	}
	defer object.Close()

	inputFile, err := os.CreateTemp(os.TempDir(), "input-*.mp4")
	if err != nil {
		return "", err
	}
	defer os.Remove(inputFile.Name())

	done := make(chan error, 1)
	go func() {
		_, err := io.Copy(inputFile, object)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("failed to copy video data: %w", err)
		}
	case <-ctx.Done():
		log.Printf("[VideoService] Context canceled while copying file %d", fileID)
		return "", ctx.Err()
	}

	if err := inputFile.Close(); err != nil {
		return "", err
	}

	trans := new(transcoder.Transcoder)

	log.Printf("[VideoService] Initializing transcoder for file %d", fileID)
	if err := trans.Initialize(inputFile.Name(), playlistPath); err != nil {
		return "", err
	}

	trans.MediaFile().SetVideoCodec("libx264")
	trans.MediaFile().SetAudioCodec("aac")
	trans.MediaFile().SetHlsSegmentDuration(4)
	trans.MediaFile().SetHlsPlaylistType("vod")
	trans.MediaFile().SetHlsSegmentFilename(filepath.Join(outputPath, "segment_%d.ts"))

	doneTrans := trans.Run(true)
	select {
	case err := <-doneTrans:
		if err != nil {
			return "", fmt.Errorf("transcoding failed: %w", err)
		}
	case <-ctx.Done():
		log.Printf("[VideoService] Context canceled while transcoding file %d", fileID)
		return "", ctx.Err()
	}

	log.Printf("[VideoService] Successfully prepared video for file %d", fileID)
	return playlistPath, nil
}

// SegmentPath возвращает путь к сегменту уже подготовленного плейлиста
func (s *VideoService) SegmentPath(fileUUID, segment string) (string, error) {
	// uuid и имя сегмента приходят из URL, наружу за пределы каталога не выпускаем
	if _, err := uuid.Parse(fileUUID); err != nil {
		return "", domain.ErrValidation
	}
	if strings.Contains(segment, "/") || strings.Contains(segment, "..") {
		return "", domain.ErrValidation
	}

	path := filepath.Join(s.outputDir, fileUUID, segment)
	if _, err := os.Stat(path); err != nil {
		return "", domain.ErrNotFound
	}

	return path, nil
}

func (s *VideoService) authorizeVideo(ctx context.Context, fileID int64, shareToken string, caller *identity.Caller) (*domain.File, error) {
	file, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if shareToken != "" {
		link, err := s.linkRes.ResolveActiveLink(ctx, shareToken)
		if err != nil {
			return nil, err
		}
		if link.RepositoryID != file.RepositoryID {
			return nil, domain.ErrForbidden
		}
		return file, nil
	}

	if caller == nil {
		return nil, domain.ErrForbidden
	}

	repo, err := s.repos.GetByID(ctx, file.RepositoryID)
	if err != nil {
		return nil, err
	}
	if repo.OwnerID != caller.ID && !caller.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}

	return file, nil
}
