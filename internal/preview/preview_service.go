package preview

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/h2non/bimg"
	"github.com/jmoiron/sqlx"

	"mediarepo/internal/domain"
	"mediarepo/internal/service/s3"
)

func init() {
	if err := os.MkdirAll(tmpDir, 0777); err != nil {
		log.Printf("Warning: failed to create directory %s: %v", tmpDir, err)
	}
}

const (
	maxImageSize  = 1024            // максимальный размер превью в пикселях
	jpegQuality   = 85              // качество JPEG
	previewPrefix = "previews/"     // префикс для превью в S3
	tmpDir        = "/tmp/previews" // директория для временных файлов
)

// Service генерирует и кеширует превью файлов репозиториев. Готовое превью
// лежит в S3 под previews/<uuid>, факт генерации отмечен в file_previews.
type Service struct {
	s3Client s3.Storage
	db       *sqlx.DB
}

func NewService(s3Client s3.Storage, db *sqlx.DB) *Service {
	return &Service{
		s3Client: s3Client,
		db:       db,
	}
}

// StartCleanupTask запускает периодическую очистку старых превью
func (s *Service) StartCleanupTask() {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		for range ticker.C {
			s.cleanupOldPreviews(context.Background())
		}
	}()
}

// cleanupOldPreviews удаляет превью старше 30 дней из S3 и базы
func (s *Service) cleanupOldPreviews(ctx context.Context) {
	log.Printf("[Preview] Starting preview cleanup task")

	var expired []string
	query := `
        DELETE FROM file_previews
        WHERE created_at < NOW() - INTERVAL '30 days'
        RETURNING file_uuid`

	if err := s.db.SelectContext(ctx, &expired, query); err != nil {
		log.Printf("[Preview] Error cleaning up old previews from database: %v", err)
		return
	}

	for _, fileUUID := range expired {
		s3Key := previewPrefix + fileUUID
		if err := s.s3Client.DeleteObject(s3Key); err != nil {
			log.Printf("[Preview] Error deleting preview from S3: %v", err)
		}
	}

	log.Printf("[Preview] Completed preview cleanup task. Removed %d old previews", len(expired))
}

// GetOrGeneratePreview отдает превью файла, генерируя его при первом запросе
func (s *Service) GetOrGeneratePreview(ctx context.Context, fileUUID string) ([]byte, error) {
	log.Printf("[Preview] Запрос превью для файла: %s", fileUUID)

	var s3Key, mimeType string
	err := s.db.QueryRowContext(ctx,
		"SELECT name, mime_type FROM files WHERE uuid = $1",
		fileUUID).Scan(&s3Key, &mimeType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	previewKey := previewPrefix + fileUUID

	// Сначала пробуем готовое превью
	preview, err := s.s3Client.GetObject(ctx, previewKey)
	if err == nil {
		defer preview.Close()
		return io.ReadAll(preview)
	}

	log.Printf("[Preview] Превью не найдено, генерируем новое")

	object, err := s.s3Client.GetObject(ctx, s3Key)
	if err != nil {
		return nil, fmt.Errorf("failed to get file from storage: %w", err)
	}
	defer object.Close()

	fileData, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read file data: %w", err)
	}

	var previewData []byte
	switch {
	case mimeType == "application/pdf":
		previewData, err = s.generatePDFPreview(fileData)
	case strings.HasPrefix(mimeType, "image/"):
		previewData, err = s.generateImagePreview(fileData)
	case strings.HasPrefix(mimeType, "video/"):
		previewData, err = s.generateVideoPreview(bytes.NewReader(fileData))
	default:
		return nil, fmt.Errorf("%w: unsupported file type %s", domain.ErrValidation, mimeType)
	}
	if err != nil {
		log.Printf("[Preview] Ошибка генерации превью: %v", err)
		return nil, fmt.Errorf("failed to generate preview: %w", err)
	}

	if err := s.savePreview(ctx, fileUUID, previewKey, previewData); err != nil {
		log.Printf("[Preview] Предупреждение: не удалось сохранить превью: %v", err)
	}

	return previewData, nil
}

// savePreview кладет превью в S3 и отмечает его в file_previews
func (s *Service) savePreview(ctx context.Context, fileUUID, key string, data []byte) error {
	if err := s.s3Client.UploadBytes(key, data); err != nil {
		return fmt.Errorf("failed to upload preview: %w", err)
	}

	query := `
        INSERT INTO file_previews (file_uuid, s3_key, size_bytes)
        VALUES ($1, $2, $3)
        ON CONFLICT (file_uuid) DO UPDATE
        SET s3_key = EXCLUDED.s3_key, size_bytes = EXCLUDED.size_bytes, created_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query, fileUUID, key, len(data)); err != nil {
		return fmt.Errorf("failed to record preview: %w", err)
	}

	return nil
}

// generatePDFPreview генерирует превью первой страницы PDF
func (s *Service) generatePDFPreview(data []byte) ([]byte, error) {
	tmpPath := filepath.Join(tmpDir, fmt.Sprintf("preview_%d", time.Now().UnixNano()))
	if err := os.MkdirAll(tmpPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpPath)

	pdfPath := filepath.Join(tmpPath, "input.pdf")
	if err := os.WriteFile(pdfPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write PDF file: %w", err)
	}

	// pdftoppm конвертирует первую страницу в изображение
	outputPath := filepath.Join(tmpPath, "output")
	cmd := exec.Command("pdftoppm",
		"-jpeg",
		"-f", "1",
		"-l", "1",
		"-scale-to", fmt.Sprintf("%d", maxImageSize),
		"-singlefile",
		pdfPath,
		outputPath,
	)

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to convert PDF: %w", err)
	}

	imgData, err := os.ReadFile(outputPath + ".jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to read converted image: %w", err)
	}

	return s.optimizeImage(imgData)
}

// generateImagePreview генерирует превью для изображений
func (s *Service) generateImagePreview(data []byte) ([]byte, error) {
	return s.optimizeImage(data)
}

// optimizeImage ужимает изображение до нужного размера
func (s *Service) optimizeImage(data []byte) ([]byte, error) {
	image := bimg.NewImage(data)

	size, err := image.Size()
	if err != nil {
		return nil, fmt.Errorf("failed to get image size: %w", err)
	}

	width, height := calculateNewDimensions(size.Width, size.Height, maxImageSize)

	processed, err := image.Process(bimg.Options{
		Width:   width,
		Height:  height,
		Quality: jpegQuality,
		Type:    bimg.JPEG,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process image: %w", err)
	}

	return processed, nil
}

// calculateNewDimensions вычисляет новые размеры с сохранением пропорций
func calculateNewDimensions(width, height, maxSize int) (newWidth, newHeight int) {
	if width > height {
		newWidth = maxSize
		newHeight = (height * maxSize) / width
	} else {
		newHeight = maxSize
		newWidth = (width * maxSize) / height
	}
	return
}

// generateVideoPreview вытаскивает кадр из видео через ffmpeg
func (s *Service) generateVideoPreview(data io.Reader) ([]byte, error) {
	tmpPath := filepath.Join(tmpDir, fmt.Sprintf("preview_%d", time.Now().UnixNano()))
	if err := os.MkdirAll(tmpPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpPath)

	videoPath := filepath.Join(tmpPath, "input.mp4")
	videoFile, err := os.Create(videoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(videoFile, data); err != nil {
		videoFile.Close()
		return nil, fmt.Errorf("failed to save video data: %w", err)
	}
	videoFile.Close()

	duration, err := getVideoDuration(videoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get video duration: %w", err)
	}

	previewTime := calculatePreviewTime(duration)
	outputPath := filepath.Join(tmpPath, "output.jpg")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-ss", previewTime,
		"-i", videoPath,
		"-vf", fmt.Sprintf("scale=%d:-1:force_original_aspect_ratio=decrease", maxImageSize),
		"-frames:v", "1",
		"-q:v", "2",
		"-f", "image2",
		"-y",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to extract frame: %w (stderr: %s)", err, stderr.String())
	}

	imgData, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame image: %w", err)
	}

	return s.optimizeImage(imgData)
}

// getVideoDuration получает длительность видео
func getVideoDuration(videoPath string) (string, error) {
	cmd := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		videoPath)

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get duration: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}

// calculatePreviewTime вычисляет время для кадра превью
func calculatePreviewTime(duration string) string {
	durationFloat, err := strconv.ParseFloat(duration, 64)
	if err != nil {
		return "00:00:01"
	}

	if durationFloat <= 10 {
		return "00:00:01"
	}

	// Берем кадр на 10% от начала видео
	previewSeconds := durationFloat * 0.1
	hours := int(previewSeconds) / 3600
	minutes := (int(previewSeconds) % 3600) / 60
	seconds := int(previewSeconds) % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
