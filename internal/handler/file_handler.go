package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"mediarepo/internal/domain"
	"mediarepo/internal/identity"
	"mediarepo/internal/service"
)

type FileHandler struct {
	fileService  *service.FileService
	videoService *service.VideoService
}

func NewFileHandler(fileService *service.FileService, videoService *service.VideoService) *FileHandler {
	return &FileHandler{
		fileService:  fileService,
		videoService: videoService,
	}
}

// UploadFile принимает multipart-форму с полем file
func (h *FileHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	caller, err := identity.VerifyCaller(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	repositoryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid repository id", domain.ErrValidation))
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, fmt.Errorf("%w: invalid multipart form", domain.ErrValidation))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, fmt.Errorf("%w: file field is required", domain.ErrValidation))
		return
	}
	defer file.Close()

	tags := r.FormValue("tags")

	uploaded, err := h.fileService.UploadFile(r.Context(), header, file, repositoryID, tags, caller)
	if err != nil {
		log.Printf("[UploadFile] Failed for repository %d: %v", repositoryID, err)
		writeError(w, err)
		return
	}

	log.Printf("[UploadFile] Uploaded file %d to repository %d", uploaded.ID, repositoryID)
	writeJSON(w, http.StatusCreated, uploaded)
}

// callerIfPresent возвращает вызывающего, если запрос пришел с
// Authorization-заголовком. Анонимные скачивания по токену идут без него.
func callerIfPresent(r *http.Request) *identity.Caller {
	if r.Header.Get("Authorization") == "" {
		return nil
	}

	caller, err := identity.VerifyCaller(r)
	if err != nil {
		return nil
	}
	return caller
}

// DownloadFile отдает содержимое файла. Доступ либо по share_token из
// query, либо по Authorization-заголовку.
func (h *FileHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	fileID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid file id", domain.ErrValidation))
		return
	}

	shareToken := r.URL.Query().Get("share_token")

	file, object, err := h.fileService.DownloadFile(r.Context(), fileID, shareToken, clientIP(r), callerIfPresent(r))
	if err != nil {
		log.Printf("[DownloadFile] Failed for file %d: %v", fileID, err)
		writeError(w, err)
		return
	}
	defer object.Close()

	w.Header().Set("Content-Type", file.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.OriginalName))
	w.Header().Set("Content-Length", strconv.FormatInt(file.SizeBytes, 10))

	if _, err := io.Copy(w, object); err != nil {
		log.Printf("[DownloadFile] Failed to stream file %d: %v", fileID, err)
	}
}

// StreamFile отдает диапазон байтов файла по заголовку Range
func (h *FileHandler) StreamFile(w http.ResponseWriter, r *http.Request) {
	fileID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid file id", domain.ErrValidation))
		return
	}

	shareToken := r.URL.Query().Get("share_token")

	start, end := parseRangeHeader(r.Header.Get("Range"))

	file, object, err := h.fileService.GetFileRange(r.Context(), fileID, shareToken, start, end, callerIfPresent(r))
	if err != nil {
		log.Printf("[StreamFile] Failed for file %d: %v", fileID, err)
		writeError(w, err)
		return
	}
	defer object.Close()

	if end < 0 || end >= file.SizeBytes {
		end = file.SizeBytes - 1
	}
	if start < 0 {
		start = 0
	}

	w.Header().Set("Content-Type", file.MIMEType)
	w.Header().Set("Accept-Ranges", "bytes")
	w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, file.SizeBytes))
	w.Header().Set("Content-Length", strconv.FormatInt(end-start+1, 10))
	w.WriteHeader(http.StatusPartialContent)

	if _, err := io.Copy(w, object); err != nil {
		log.Printf("[StreamFile] Failed to stream file %d: %v", fileID, err)
	}
}

// parseRangeHeader разбирает "bytes=start-end". Отсутствующий или кривой
// заголовок означает запрос с начала файла.
func parseRangeHeader(header string) (start, end int64) {
	start, end = 0, -1

	if !strings.HasPrefix(header, "bytes=") {
		return
	}

	parts := strings.SplitN(strings.TrimPrefix(header, "bytes="), "-", 2)
	if len(parts) != 2 {
		return
	}

	if v, err := strconv.ParseInt(parts[0], 10, 64); err == nil {
		start = v
	}
	if v, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
		end = v
	}

	return
}

// PrepareVideo нарезает видео в HLS и отдает плейлист
func (h *FileHandler) PrepareVideo(w http.ResponseWriter, r *http.Request) {
	fileID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid file id", domain.ErrValidation))
		return
	}

	shareToken := r.URL.Query().Get("share_token")

	playlistPath, err := h.videoService.PrepareStreamingVideo(r.Context(), fileID, shareToken, callerIfPresent(r))
	if err != nil {
		log.Printf("[PrepareVideo] Failed for file %d: %v", fileID, err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.apple.mpegurl")
	http.ServeFile(w, r, playlistPath)
}

// GetVideoSegment отдает сегмент уже подготовленного HLS-плейлиста
func (h *FileHandler) GetVideoSegment(w http.ResponseWriter, r *http.Request) {
	fileUUID := chi.URLParam(r, "uuid")
	segment := chi.URLParam(r, "segment")

	path, err := h.videoService.SegmentPath(fileUUID, segment)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "video/mp2t")
	http.ServeFile(w, r, path)
}
