package handlers

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "tracklite.io/tracklite/internal/pkg/errors"
)

type uploadBody struct {
	reader io.Reader
	file   multipart.File
}

func (b *uploadBody) close() {
	if b.file != nil {
		_ = b.file.Close()
	}
}

// csvBody accepts a CSV payload either as a multipart "file" field or as the
// raw request body.
func csvBody(c *gin.Context) (*uploadBody, error) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, apperrors.BadRequest(apperrors.CodeMalformedCSV, "missing multipart file field")
		}
		f, err := fh.Open()
		if err != nil {
			return nil, apperrors.BadRequest(apperrors.CodeMalformedCSV, "cannot read uploaded file")
		}
		return &uploadBody{reader: f, file: f}, nil
	}
	return &uploadBody{reader: c.Request.Body}, nil
}
