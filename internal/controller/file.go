package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khanhnnhnvn/pythonvietnam/internal/storage"
	"github.com/khanhnnhnvn/pythonvietnam/internal/utilities"
)

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadFile accepts one multipart file under the "file" field, persists it
// and returns its URL. The URL only appears in the response after the write
// has fully finished.
func (ct *Controller) UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "missing file field"})
		return
	}

	f, err := header.Open()
	if err != nil {
		ct.Logger.WithError(err).Error("open upload failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to read upload"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		ct.Logger.WithError(err).Error("read upload failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to read upload"})
		return
	}

	url, err := ct.Storage.Save(c.Request.Context(), header.Filename, data)
	if errors.Is(err, storage.ErrEmptyFile) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "uploaded file is empty"})
		return
	}
	if err != nil {
		ct.Logger.WithError(err).Error("persist upload failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to store upload"})
		return
	}

	c.JSON(http.StatusCreated, uploadResponse{URL: url})
}
