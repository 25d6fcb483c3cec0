package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aayush349/skybm-backend/internal/errs"
	"github.com/Aayush349/skybm-backend/internal/media"
	"github.com/Aayush349/skybm-backend/internal/model"
)

// DefaultAltText is used when an image is registered without alt text.
const DefaultAltText = "Gallery image"

// GalleryRepository is the persistence surface the gallery service depends on.
type GalleryRepository interface {
	FindAllByCreatedDesc() ([]model.GalleryImage, error)
	FindById(id string) (model.GalleryImage, error)
	Insert(image model.GalleryImage) error
	DeleteById(id string) (int64, error)
}

// CreateGalleryImageRequest registers an asset already uploaded to the media
// host.
type CreateGalleryImageRequest struct {
	Src      string `json:"src"`
	PublicID string `json:"publicId"`
	Alt      string `json:"alt"`
}

type GalleryService struct {
	repo  GalleryRepository
	media media.Service
	log   zerolog.Logger
}

func NewGalleryService(repo GalleryRepository, mediaService media.Service, log zerolog.Logger) *GalleryService {
	return &GalleryService{
		repo:  repo,
		media: mediaService,
		log:   log.With().Str("component", "gallery_service").Logger(),
	}
}

func (s *GalleryService) ListImages() ([]model.GalleryImage, error) {
	images, err := s.repo.FindAllByCreatedDesc()
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to list images")
		return nil, errs.NewInternal("failed to fetch gallery images")
	}
	if images == nil {
		images = []model.GalleryImage{}
	}
	return images, nil
}

func (s *GalleryService) CreateImage(req CreateGalleryImageRequest) (model.GalleryImage, error) {
	if missing := missingFields(map[string]string{
		"src":      req.Src,
		"publicId": req.PublicID,
	}); len(missing) > 0 {
		return model.GalleryImage{}, errs.NewValidation(fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}

	image := model.GalleryImage{
		ID:        primitive.NewObjectID().Hex(),
		Src:       req.Src,
		PublicID:  req.PublicID,
		Alt:       req.Alt,
		CreatedAt: time.Now().UTC(),
	}
	if image.Alt == "" {
		image.Alt = DefaultAltText
	}

	if err := s.repo.Insert(image); err != nil {
		s.log.Error().Err(err).Str("public_id", image.PublicID).Msg("Failed to insert image")
		return model.GalleryImage{}, errs.NewInternal("failed to register gallery image")
	}

	s.log.Info().Str("id", image.ID).Str("public_id", image.PublicID).Msg("Gallery image registered")
	return image, nil
}

// DeleteImage removes the asset at the media host first and only then the
// database record. When the host call fails the record is kept, so the image
// keeps resolving; a crash between the two steps can leave an orphaned
// record, which is accepted.
func (s *GalleryService) DeleteImage(ctx context.Context, id string) error {
	image, err := s.repo.FindById(id)
	if errors.Is(err, errs.ErrNotFound) {
		return errs.NewNotFound("gallery image not found")
	}
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("Failed to fetch image")
		return errs.NewInternal("failed to delete gallery image")
	}

	if err := s.media.Destroy(ctx, image.PublicID); err != nil {
		s.log.Error().Err(err).Str("id", id).Str("public_id", image.PublicID).Msg("Failed to destroy asset")
		return errs.NewInternal("failed to delete gallery image")
	}

	if _, err := s.repo.DeleteById(id); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("Failed to delete image record")
		return errs.NewInternal("failed to delete gallery image")
	}

	s.log.Info().Str("id", id).Str("public_id", image.PublicID).Msg("Gallery image deleted")
	return nil
}
