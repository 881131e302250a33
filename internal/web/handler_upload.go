package web

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/vbonduro/menuscan/internal/session"
)

const maxUploadSize = 50 * 1024 * 1024 // 50 MB per request

// allowedImageTypes is the set of MIME types accepted for captured pages.
// net/http.DetectContentType handles JPEG, PNG, and GIF via magic-byte
// sniffing. WebP is detected separately because the WHATWG sniffing algorithm (and
// therefore the stdlib) does not include a WebP signature.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// isWebP reports whether data is a WebP image (RIFF container with "WEBP" at
// offset 8).
func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// allowedImageMIME returns the detected MIME type and true if the data is an
// accepted image format, or ("", false) otherwise.
func allowedImageMIME(data []byte) (string, bool) {
	if isWebP(data) {
		return "image/webp", true
	}
	mime := http.DetectContentType(data)
	if allowedImageTypes[mime] {
		return mime, true
	}
	return "", false
}

type upload struct {
	data     []byte
	mimeType string
}

// readUploads reads and sniffs every file. Nothing is stored unless all of
// them are images.
func (s *Server) readUploads(files []*multipart.FileHeader) ([]upload, error) {
	uploads := make([]upload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		closeWithLog(f, "upload file", s.logger)
		if err != nil {
			return nil, err
		}
		mimeType, ok := allowedImageMIME(data)
		if !ok {
			return nil, errUnsupportedImage
		}
		uploads = append(uploads, upload{data: data, mimeType: mimeType})
	}
	return uploads, nil
}

var errUnsupportedImage = errors.New("unsupported image format")

func (s *Server) handleAddPages(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}
	var files []*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File["images"]
	}
	if len(files) == 0 {
		http.Error(w, "image file required", http.StatusBadRequest)
		return
	}

	uploads, err := s.readUploads(files)
	if errors.Is(err, errUnsupportedImage) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "failed to read file", http.StatusInternalServerError)
		s.logger.Error("read upload failed", "error", err)
		return
	}

	for _, u := range uploads {
		_, err := s.service.AddPage(r.Context(), id, u.data, u.mimeType)
		if errors.Is(err, session.ErrTooManyPages) {
			s.logger.Warn("page limit reached, ignoring remaining uploads", "session_id", id)
			break
		}
		if err != nil {
			s.fail(w, r, err, "failed to add page")
			return
		}
	}

	s.renderPageList(w, r, id)
}

func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)

	reader, mimeType, err := s.service.PageImage(r.Context(), id, r.PathValue("key"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer closeWithLog(reader, "page reader", s.logger)

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("write page failed", "error", err)
	}
}

func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	if _, err := s.service.RemovePage(r.Context(), id, r.PathValue("key")); err != nil {
		s.fail(w, r, err, "failed to remove page")
		return
	}
	s.renderPageList(w, r, id)
}

// renderPageList answers HTMX requests with the refreshed page list and
// plain form posts with a redirect.
func (s *Server) renderPageList(w http.ResponseWriter, r *http.Request, id string) {
	if !isHTMX(r) {
		redirectHome(w, r)
		return
	}
	v, err := s.service.View(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "failed to load session")
		return
	}
	if err := s.renderPartial(w, "page_list", screenData{View: v}, "partials/page_list.html"); err != nil {
		s.logger.Error("render partial failed", "error", err)
	}
}

// closeWithLog closes c and logs any error, using label to identify the resource.
func closeWithLog(c io.Closer, label string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close resource", "label", label, "error", err)
	}
}
