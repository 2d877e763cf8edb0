package cmd

import (
	"mime"
	"net/http"
	"strings"

	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/coaching-ai/coachadmin/internal/logic/auth"
	"github.com/gogf/gf/v2/errors/gcode"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/net/ghttp"
)

const (
	contentTypeEventStream = "text/event-stream"
	contentTypeOctetStream = "application/octet-stream"
	contentTypeCSV         = "text/csv"
)

// 上传文件大小限制: 10MB
const maxUploadSize = 10 << 20

var (
	// streamContentType is the content types for stream response.
	streamContentType = []string{contentTypeEventStream, contentTypeOctetStream, contentTypeCSV}
)

// MiddlewareMultipartMaxMemory 限制上传请求体大小
func MiddlewareMultipartMaxMemory(r *ghttp.Request) {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		r.Middleware.Next()
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		r.Response.WriteStatus(http.StatusRequestEntityTooLarge)
		r.Response.WriteJson(ghttp.DefaultHandlerResponse{
			Code:    int(errors.ErrFileSizeExceeded),
			Message: "File size exceeds the upload limit (10MB)",
			Data:    nil,
		})
		return
	}

	r.Middleware.Next()
}

// MiddlewareAuth bearer token 认证。token 对应的操作员挂到请求上下文。
func MiddlewareAuth(r *ghttp.Request) {
	token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer"))

	operator, err := auth.ResolveOperator(r.Context(), token)
	if err != nil {
		code := errors.ErrUnauthorized
		message := "unauthorized"
		if appErr := errors.GetAppError(err); appErr != nil {
			code = appErr.Code
			message = appErr.Message
		}
		r.Response.WriteStatus(code.HTTPStatusCode())
		r.Response.WriteJson(ghttp.DefaultHandlerResponse{
			Code:    int(code),
			Message: message,
			Data:    nil,
		})
		return
	}

	r.SetCtx(auth.WithOperator(r.Context(), operator))
	r.Middleware.Next()
}

// MiddlewareHandlerResponse is the default middleware handling handler response object and its error.
func MiddlewareHandlerResponse(r *ghttp.Request) {
	r.Middleware.Next()

	// There's custom buffer content, it then exits current handler.
	if r.Response.BufferLength() > 0 || r.Response.Writer.BytesWritten() > 0 {
		return
	}

	// It does not output common response content if it is stream response.
	mediaType, _, _ := mime.ParseMediaType(r.Response.Header().Get("Content-Type"))
	for _, ct := range streamContentType {
		if mediaType == ct {
			return
		}
	}

	var (
		msg  string
		err  = r.GetError()
		res  = r.GetHandlerResponse()
		code = 0
	)
	if err != nil {
		// 业务错误带自己的错误码和HTTP状态
		if appErr := errors.GetAppError(err); appErr != nil {
			code = int(appErr.Code)
			msg = appErr.Message
			r.Response.WriteStatus(appErr.Code.HTTPStatusCode())
		} else {
			gCode := gerror.Code(err)
			if gCode == gcode.CodeNil {
				gCode = gcode.CodeInternalError
			}
			code = gCode.Code()
			msg = err.Error()
			r.Response.WriteStatus(http.StatusInternalServerError)
		}
	} else {
		if r.Response.Status > 0 && r.Response.Status != http.StatusOK {
			switch r.Response.Status {
			case http.StatusNotFound:
				code = int(errors.ErrNotFound)
				msg = "not found"
			default:
				code = gcode.CodeUnknown.Code()
				msg = http.StatusText(r.Response.Status)
			}
			// It creates an error as it can be retrieved by other middlewares.
			r.SetError(gerror.NewCode(gcode.New(code, msg, nil), msg))
		} else {
			msg = "OK"
		}
	}
	r.Response.WriteJson(ghttp.DefaultHandlerResponse{
		Code:    code,
		Message: msg,
		Data:    res,
	})
}
