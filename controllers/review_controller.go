// controllers/review_controller.go
package controllers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/chloeyeo/wswg-backend/pkg/resp"
	"github.com/chloeyeo/wswg-backend/repository"
	"github.com/chloeyeo/wswg-backend/services"
	"github.com/chloeyeo/wswg-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewController struct {
	Service   *services.ReviewService
	UploadDir string
}

func NewReviewController(s *services.ReviewService, uploadDir string) *ReviewController {
	return &ReviewController{Service: s, UploadDir: uploadDir}
}

// ===== DTO =====

type CreateReviewReq struct {
	UserID  string   `json:"userId" binding:"required"`
	RestID  string   `json:"restId" binding:"required"`
	Content string   `json:"content"`
	Rating  int      `json:"rating"`
	Images  []string `json:"images"`
}

// ===== Handlers =====

// POST /review/
func (ctl *ReviewController) Create(c *gin.Context) {
	var req CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		resp.BadRequest(c, "Invalid userId")
		return
	}
	restID, err := primitive.ObjectIDFromHex(req.RestID)
	if err != nil {
		resp.BadRequest(c, "Invalid restId")
		return
	}

	review, err := ctl.Service.Create(c.Request.Context(), userID, restID, services.CreateReviewInput{
		Content: req.Content,
		Rating:  req.Rating,
		Images:  req.Images,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

// POST /review/image
// Accepts one file under the multipart field "image" and answers with the
// storage key only; attaching the key to a review is the client's job.
func (ctl *ReviewController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(ctl.UploadDir, filename)); err != nil {
		resp.ServerError(c, err)
		return
	}
	c.String(http.StatusOK, filename)
}

// GET /review/:id  (id = restaurant id)
func (ctl *ReviewController) List(c *gin.Context) {
	restID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "Invalid restaurant id")
		return
	}
	limit := utils.QueryInt64(c, "limit", 5)
	skip := utils.QueryInt64(c, "skip", 0)

	reviews, hasMore, err := ctl.Service.List(c.Request.Context(), restID, limit, skip)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": reviews, "hasMore": hasMore})
}

// GET /review/:id/view
func (ctl *ReviewController) Detail(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "Invalid review id")
		return
	}

	review, err := ctl.Service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "Review not find")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

// DELETE /review/:id
func (ctl *ReviewController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "Invalid review id")
		return
	}

	if err := ctl.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "review not find")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "리뷰가 삭제되었습니다!"})
}
