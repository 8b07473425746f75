package server

import (
	"bytes"
	"io"
	"mime"
	"net/http"

	"channel-message-service/internal/storage/zapadapter"

	"github.com/rs/xid"
	"github.com/valyala/fastjson"
	"go.uber.org/zap"
)

// enforceJSON is a middleware pre-processing each body-carrying HTTP request.
// It checks the application/json Content-Type header and that the body is
// valid json. A blank Content-Type header is set to application/json.
// Method matching is already done by the ServeMux patterns.
func enforceJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// check "Content-Type" header
		contentType := r.Header.Get("Content-Type")
		if contentType != "" {
			mt, _, err := mime.ParseMediaType(contentType)
			if err != nil {
				http.Error(w, "Malformed Content-Type header", http.StatusBadRequest)
				return
			}

			if mt != "application/json" {
				http.Error(w, "Content-Type header must be application/json", http.StatusUnsupportedMediaType)
				return
			}
		} else {
			r.Header.Set("Content-Type", "application/json")
		}

		// check if provided request body is valid JSON
		var bodyBuf bytes.Buffer
		bodyReader := io.TeeReader(r.Body, &bodyBuf)
		body, err := io.ReadAll(bodyReader)
		if err != nil {
			http.Error(w, "Can not read request body", http.StatusBadRequest)
			return
		}

		if len(body) == 0 {
			http.Error(w, "No body provided", http.StatusBadRequest)
			return
		}

		err = fastjson.ValidateBytes(body)
		if err != nil {
			http.Error(w, "Malformed JSON", http.StatusBadRequest)
			return
		}

		r.Body = io.NopCloser(&bodyBuf)

		next.ServeHTTP(w, r)
	})
}

func log(next http.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := xid.New().String()

		ctx := zapadapter.NewContextWithID(r.Context(), id)
		rwID := r.WithContext(ctx)

		logger.Info("incoming http request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("uri", r.URL.RequestURI()),
			zap.String("ip", r.RemoteAddr),
		)

		next.ServeHTTP(w, rwID)
	})
}
