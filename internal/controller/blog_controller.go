package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aayush349/skybm-backend/internal/errs"
	"github.com/Aayush349/skybm-backend/internal/model"
	"github.com/Aayush349/skybm-backend/internal/service"
)

// BlogService is the surface of the blog manager the controller uses.
type BlogService interface {
	ListPosts() ([]model.BlogPost, error)
	ListSummaries() ([]model.BlogSummary, error)
	GetPostBySlug(slug string) (model.BlogPost, error)
	CreatePost(req service.CreateBlogPostRequest) (model.BlogPost, error)
	DeletePostBySlug(slug string) error
}

type BlogController struct {
	blogService BlogService
}

func NewBlogController(blogService BlogService) *BlogController {
	return &BlogController{
		blogService: blogService,
	}
}

func (c *BlogController) Register(api *gin.RouterGroup) {
	api.GET("/blogs", c.ListPosts)
	api.GET("/blogs/:slug", c.GetPost)
	api.POST("/blogs", c.CreatePost)
	api.DELETE("/blogs/slug/:slug", c.DeletePost)
	api.GET("/admin/blogs", c.ListSummaries)
}

func (c *BlogController) ListPosts(ctx *gin.Context) {
	posts, err := c.blogService.ListPosts()
	if err != nil {
		errs.SendError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

func (c *BlogController) ListSummaries(ctx *gin.Context) {
	summaries, err := c.blogService.ListSummaries()
	if err != nil {
		errs.SendError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

func (c *BlogController) GetPost(ctx *gin.Context) {
	post, err := c.blogService.GetPostBySlug(ctx.Param("slug"))
	if err != nil {
		errs.SendError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

func (c *BlogController) CreatePost(ctx *gin.Context) {
	var req service.CreateBlogPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errs.SendError(ctx, errs.NewValidation("invalid request body"))
		return
	}

	post, err := c.blogService.CreatePost(req)
	if err != nil {
		errs.SendError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, post)
}

func (c *BlogController) DeletePost(ctx *gin.Context) {
	if err := c.blogService.DeletePostBySlug(ctx.Param("slug")); err != nil {
		errs.SendError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "blog post deleted"})
}
