package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aayush349/skybm-backend/internal/errs"
	"github.com/Aayush349/skybm-backend/internal/model"
)

// DefaultAuthor is used when a post is created without an author.
const DefaultAuthor = "Admin"

// BlogRepository is the persistence surface the blog service depends on.
type BlogRepository interface {
	FindAllByPublishDateDesc() ([]model.BlogPost, error)
	FindSummariesByCreatedDesc() ([]model.BlogSummary, error)
	FindBySlug(slug string) (model.BlogPost, error)
	ExistsBySlug(slug string) (bool, error)
	Insert(post model.BlogPost) error
	DeleteBySlug(slug string) (int64, error)
}

// CreateBlogPostRequest carries the caller-supplied fields for a new post.
type CreateBlogPostRequest struct {
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	Category      string     `json:"category"`
	Slug          string     `json:"slug"`
	FeaturedImage string     `json:"featuredImage"`
	Author        string     `json:"author"`
	ReadTime      int        `json:"readTime"`
	Tags          []string   `json:"tags"`
	PublishDate   *time.Time `json:"publishDate"`
}

type BlogService struct {
	repo BlogRepository
	log  zerolog.Logger
}

func NewBlogService(repo BlogRepository, log zerolog.Logger) *BlogService {
	return &BlogService{
		repo: repo,
		log:  log.With().Str("component", "blog_service").Logger(),
	}
}

func (s *BlogService) ListPosts() ([]model.BlogPost, error) {
	posts, err := s.repo.FindAllByPublishDateDesc()
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to list posts")
		return nil, errs.NewInternal("failed to fetch blog posts")
	}
	if posts == nil {
		posts = []model.BlogPost{}
	}
	return posts, nil
}

func (s *BlogService) ListSummaries() ([]model.BlogSummary, error) {
	summaries, err := s.repo.FindSummariesByCreatedDesc()
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to list post summaries")
		return nil, errs.NewInternal("failed to fetch blog posts")
	}
	if summaries == nil {
		summaries = []model.BlogSummary{}
	}
	return summaries, nil
}

func (s *BlogService) GetPostBySlug(slug string) (model.BlogPost, error) {
	post, err := s.repo.FindBySlug(slug)
	if errors.Is(err, errs.ErrNotFound) {
		return model.BlogPost{}, errs.NewNotFound("blog post not found")
	}
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("Failed to fetch post")
		return model.BlogPost{}, errs.NewInternal("failed to fetch blog post")
	}
	return post, nil
}

func (s *BlogService) CreatePost(req CreateBlogPostRequest) (model.BlogPost, error) {
	if missing := missingFields(map[string]string{
		"title":    req.Title,
		"excerpt":  req.Excerpt,
		"category": req.Category,
		"content":  req.Content,
		"slug":     req.Slug,
	}); len(missing) > 0 {
		return model.BlogPost{}, errs.NewValidation(fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}

	exists, err := s.repo.ExistsBySlug(req.Slug)
	if err != nil {
		s.log.Error().Err(err).Str("slug", req.Slug).Msg("Failed to check slug")
		return model.BlogPost{}, errs.NewInternal("failed to create blog post")
	}
	if exists {
		return model.BlogPost{}, errs.NewConflict("a blog post with this slug already exists")
	}

	now := time.Now().UTC()

	post := model.BlogPost{
		ID:            primitive.NewObjectID().Hex(),
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Category:      req.Category,
		Slug:          req.Slug,
		FeaturedImage: req.FeaturedImage,
		Author:        req.Author,
		ReadTime:      req.ReadTime,
		Tags:          req.Tags,
		PublishDate:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if post.Author == "" {
		post.Author = DefaultAuthor
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if req.PublishDate != nil {
		post.PublishDate = *req.PublishDate
	}

	if err := s.repo.Insert(post); err != nil {
		s.log.Error().Err(err).Str("slug", post.Slug).Msg("Failed to insert post")
		return model.BlogPost{}, errs.NewInternal("failed to create blog post")
	}

	s.log.Info().Str("slug", post.Slug).Str("id", post.ID).Msg("Blog post created")
	return post, nil
}

func (s *BlogService) DeletePostBySlug(slug string) error {
	deleted, err := s.repo.DeleteBySlug(slug)
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("Failed to delete post")
		return errs.NewInternal("failed to delete blog post")
	}
	if deleted == 0 {
		return errs.NewNotFound("blog post not found")
	}

	s.log.Info().Str("slug", slug).Msg("Blog post deleted")
	return nil
}
