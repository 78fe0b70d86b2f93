package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/posesug/internal/guidance"
	"github.com/jonathan/posesug/internal/observability"
	"github.com/jonathan/posesug/internal/server/middleware"
	"go.uber.org/zap"
)

// Multipart field names of POST /posesug.
const (
	fieldSessionID  = "sessionId"
	fieldImage      = "image"
	fieldUserIntent = "userIntent"
	fieldMeta       = "meta"
)

// multipartMemory is how much of a form is buffered in memory before spilling to disk.
const multipartMemory = 8 << 20

var validate = validator.New()

// handlePosesug analyzes one uploaded photo.
func (s *Server) handlePosesug(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	route := s.routeLabel(r)
	log := s.logger.With(zap.String("request_id", middleware.GetRequestID(r.Context())))

	req, err := s.parsePosesugRequest(w, r)
	if err != nil {
		log.Info("Rejected request", zap.String("route", route), zap.Error(err))
		observability.ObserveRequest(route, observability.OutcomeClientError, time.Since(start))
		s.errorResponse(w, HTTPStatus(err), ErrorDetail(err))
		return
	}

	resp, err := s.analyzer.Suggest(r.Context(), req)
	if err != nil {
		log.Error("Pose suggestion failed",
			zap.String("route", route),
			zap.String("session_id", req.SessionID),
			zap.Error(err),
		)
		observability.ObserveRequest(route, observability.OutcomeServerError, time.Since(start))
		s.errorResponse(w, HTTPStatus(err), ErrorDetail(err))
		return
	}

	observability.ObserveRequest(route, observability.OutcomeSuccess, time.Since(start))
	s.jsonResponse(w, http.StatusOK, resp)
}

// parsePosesugRequest reads and validates the multipart form. Checks run in a fixed order and
// the first failure is returned.
func (s *Server) parsePosesugRequest(w http.ResponseWriter, r *http.Request) (guidance.Request, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return guidance.Request{}, &ValidationError{
				Field:   fieldImage,
				Message: fmt.Sprintf("参数错误：请求体超过%d字节上限", tooLarge.Limit),
			}
		}
		return guidance.Request{}, &ValidationError{
			Field:   fieldImage,
			Message: "参数错误：请求必须是multipart/form-data格式",
		}
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	sessionID := r.FormValue(fieldSessionID)
	if err := validate.Var(strings.TrimSpace(sessionID), "required"); err != nil {
		return guidance.Request{}, &ValidationError{Field: fieldSessionID, Message: "参数错误：sessionId不能为空"}
	}

	file, header, err := r.FormFile(fieldImage)
	if err != nil {
		return guidance.Request{}, &ValidationError{Field: fieldImage, Message: "参数错误：image不能为空"}
	}
	defer file.Close()

	ext := fileExtension(header)
	if err := validate.Var(ext, "oneof=jpg jpeg png"); err != nil {
		return guidance.Request{}, &ValidationError{
			Field:   fieldImage,
			Message: "参数错误：仅支持JPG/PNG格式图像，当前文件格式为" + ext,
		}
	}

	meta := r.FormValue(fieldMeta)
	if err := validate.Var(meta, "omitempty,json"); err != nil {
		return guidance.Request{}, &ValidationError{Field: fieldMeta, Message: "参数错误：meta不是合法的JSON字符串"}
	}

	image, err := io.ReadAll(file)
	if err != nil {
		return guidance.Request{}, &ValidationError{Field: fieldImage, Message: "图像读取失败：" + err.Error()}
	}

	req := guidance.Request{
		SessionID:  sessionID,
		Image:      image,
		UserIntent: r.FormValue(fieldUserIntent),
	}
	if meta != "" {
		req.Meta = json.RawMessage(meta)
	}
	return req, nil
}

// fileExtension returns the lower-cased text after the last dot of the uploaded file name,
// or the whole name when it has no dot.
func fileExtension(header *multipart.FileHeader) string {
	name := strings.ToLower(header.Filename)
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
