package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aayush349/skybm-backend/internal/errs"
	"github.com/Aayush349/skybm-backend/internal/model"
	"github.com/Aayush349/skybm-backend/internal/service"
)

// GalleryService is the surface of the gallery manager the controller uses.
type GalleryService interface {
	ListImages() ([]model.GalleryImage, error)
	CreateImage(req service.CreateGalleryImageRequest) (model.GalleryImage, error)
	DeleteImage(ctx context.Context, id string) error
}

type GalleryController struct {
	galleryService GalleryService
}

func NewGalleryController(galleryService GalleryService) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
	}
}

func (c *GalleryController) Register(api *gin.RouterGroup) {
	api.GET("/gallery", c.ListImages)
	api.POST("/gallery", c.CreateImage)
	api.DELETE("/gallery/:id", c.DeleteImage)
}

func (c *GalleryController) ListImages(ctx *gin.Context) {
	images, err := c.galleryService.ListImages()
	if err != nil {
		errs.SendError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, images)
}

func (c *GalleryController) CreateImage(ctx *gin.Context) {
	var req service.CreateGalleryImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errs.SendError(ctx, errs.NewValidation("invalid request body"))
		return
	}

	image, err := c.galleryService.CreateImage(req)
	if err != nil {
		errs.SendError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, image)
}

func (c *GalleryController) DeleteImage(ctx *gin.Context) {
	if err := c.galleryService.DeleteImage(ctx.Request.Context(), ctx.Param("id")); err != nil {
		errs.SendError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "gallery image deleted"})
}
