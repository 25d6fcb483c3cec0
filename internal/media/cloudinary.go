package media

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog"
)

// CloudinaryService deletes assets at Cloudinary by their public id.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
	log zerolog.Logger
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string, log zerolog.Logger) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	return &CloudinaryService{
		cld: cld,
		log: log.With().Str("component", "cloudinary").Logger(),
	}, nil
}

func (s *CloudinaryService) Destroy(ctx context.Context, publicID string) error {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to destroy asset %s: %w", publicID, err)
	}

	// Cloudinary reports the outcome in the result string rather than as an
	// error. An already-deleted asset is fine, anything else is not.
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary destroy of %s returned %q", publicID, result.Result)
	}

	s.log.Debug().Str("public_id", publicID).Str("result", result.Result).Msg("Asset destroyed")
	return nil
}
