package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khanhnnhnvn/pythonvietnam/internal/aiassist"
	"github.com/khanhnnhnvn/pythonvietnam/internal/storage"
	"github.com/khanhnnhnvn/pythonvietnam/internal/utilities"
	"github.com/khanhnnhnvn/pythonvietnam/internal/validation"
)

type parseCVResponse struct {
	CVURL string `json:"cv_url"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// Notice is set when extraction was unavailable and the applicant
	// should fill the form by hand. The upload itself still succeeded.
	Notice string `json:"notice,omitempty"`
}

// ParseCV stores an uploaded CV and extracts name, email and phone from it to
// prefill the application form. Extraction failing never fails the request;
// the stored CV URL always comes back.
func (ct *Controller) ParseCV(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "missing file field"})
		return
	}

	f, err := header.Open()
	if err != nil {
		ct.Logger.WithError(err).Error("open cv upload failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to read upload"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		ct.Logger.WithError(err).Error("read cv upload failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to read upload"})
		return
	}

	cvURL, err := ct.Storage.Save(c.Request.Context(), header.Filename, data)
	if errors.Is(err, storage.ErrEmptyFile) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "uploaded file is empty"})
		return
	}
	if err != nil {
		ct.Logger.WithError(err).Error("persist cv failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to store upload"})
		return
	}

	resp := parseCVResponse{CVURL: cvURL}
	info, err := ct.AI.ParseCV(c.Request.Context(), string(data))
	if err != nil {
		if !errors.Is(err, aiassist.ErrNotConfigured) {
			ct.Logger.WithError(err).Warn("cv extraction failed")
		}
		resp.Notice = "automatic extraction is unavailable, please fill in your details manually"
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.Name = info.Name
	resp.Email = info.Email
	resp.Phone = info.Phone
	c.JSON(http.StatusOK, resp)
}

type generatePostRequest struct {
	Topic string `json:"topic" binding:"required,min=3"`
}

// GeneratePost drafts a blog post for the admin editor. The cover image is
// stored through file ingestion before the draft is returned; when image
// generation is unavailable a placeholder URL is substituted so the text
// fields stay usable. Nothing is persisted to the posts table here.
func (ct *Controller) GeneratePost(c *gin.Context) {
	var req generatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: validation.Describe(err)})
		return
	}

	draft, err := ct.AI.GenerateDraft(c.Request.Context(), req.Topic)
	if ct.aiError(c, err, "generate post") {
		return
	}

	draft.ImageURL = aiassist.PlaceholderImageURL(draft.ImageHint)
	if img, err := ct.AI.GenerateImage(c.Request.Context(), "Blog cover image: "+draft.ImageHint); err != nil {
		ct.Logger.WithError(err).Warn("cover image generation failed, using placeholder")
	} else if url, err := ct.Storage.Save(c.Request.Context(), "generated-cover.png", img); err != nil {
		ct.Logger.WithError(err).Warn("store cover image failed, using placeholder")
	} else {
		draft.ImageURL = url
	}

	c.JSON(http.StatusOK, draft)
}

type summarizeRequest struct {
	Text string `json:"text" binding:"required,min=50"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

// Summarize condenses text into a short summary.
func (ct *Controller) Summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: validation.Describe(err)})
		return
	}

	summary, err := ct.AI.Summarize(c.Request.Context(), req.Text)
	if ct.aiError(c, err, "summarize") {
		return
	}
	c.JSON(http.StatusOK, summarizeResponse{Summary: summary})
}

// aiError writes the right failure response for an AI pipeline error and
// reports whether the request is finished.
func (ct *Controller) aiError(c *gin.Context, err error, op string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, aiassist.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, utilities.ErrorResponse{Error: "ai assistance is not configured"})
		return true
	}
	ct.Logger.WithError(err).WithField("op", op).Error("ai pipeline failed")
	c.JSON(http.StatusBadGateway, utilities.ErrorResponse{Error: "ai assistance is temporarily unavailable"})
	return true
}
