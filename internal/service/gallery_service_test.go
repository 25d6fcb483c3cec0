package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aayush349/skybm-backend/internal/errs"
	"github.com/Aayush349/skybm-backend/internal/model"
)

// fakeGalleryRepo is an in-memory GalleryRepository.
type fakeGalleryRepo struct {
	images []model.GalleryImage
	err    error
}

func (f *fakeGalleryRepo) FindAllByCreatedDesc() ([]model.GalleryImage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.images, nil
}

func (f *fakeGalleryRepo) FindById(id string) (model.GalleryImage, error) {
	if f.err != nil {
		return model.GalleryImage{}, f.err
	}
	for _, image := range f.images {
		if image.ID == id {
			return image, nil
		}
	}
	return model.GalleryImage{}, errs.ErrNotFound
}

func (f *fakeGalleryRepo) Insert(image model.GalleryImage) error {
	if f.err != nil {
		return f.err
	}
	f.images = append(f.images, image)
	return nil
}

func (f *fakeGalleryRepo) DeleteById(id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for i, image := range f.images {
		if image.ID == id {
			f.images = append(f.images[:i], f.images[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// fakeMediaService records destroy calls and can be told to fail.
type fakeMediaService struct {
	destroyed []string
	err       error
}

func (f *fakeMediaService) Destroy(_ context.Context, publicID string) error {
	if f.err != nil {
		return f.err
	}
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

func TestGalleryServiceCreateImage(t *testing.T) {
	t.Run("applies alt default", func(t *testing.T) {
		repo := &fakeGalleryRepo{}
		svc := NewGalleryService(repo, &fakeMediaService{}, zerolog.Nop())

		image, err := svc.CreateImage(CreateGalleryImageRequest{
			Src:      "https://res.example.com/y.jpg",
			PublicID: "gallery/y",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, image.ID)
		assert.Equal(t, "Gallery image", image.Alt)
		assert.False(t, image.CreatedAt.IsZero())
		assert.Len(t, repo.images, 1)
	})

	t.Run("missing src", func(t *testing.T) {
		repo := &fakeGalleryRepo{}
		svc := NewGalleryService(repo, &fakeMediaService{}, zerolog.Nop())

		_, err := svc.CreateImage(CreateGalleryImageRequest{PublicID: "gallery/y"})
		var apiErr errs.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
		assert.Contains(t, apiErr.Message, "src")
		assert.Empty(t, repo.images)
	})

	t.Run("missing publicId", func(t *testing.T) {
		repo := &fakeGalleryRepo{}
		svc := NewGalleryService(repo, &fakeMediaService{}, zerolog.Nop())

		_, err := svc.CreateImage(CreateGalleryImageRequest{Src: "https://x/y.jpg"})
		var apiErr errs.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
		assert.Contains(t, apiErr.Message, "publicId")
		assert.Empty(t, repo.images)
	})
}

func TestGalleryServiceDeleteImage(t *testing.T) {
	existing := model.GalleryImage{ID: "abc", Src: "https://res.example.com/y.jpg", PublicID: "gallery/y"}

	t.Run("destroys asset then record", func(t *testing.T) {
		repo := &fakeGalleryRepo{images: []model.GalleryImage{existing}}
		mediaSvc := &fakeMediaService{}
		svc := NewGalleryService(repo, mediaSvc, zerolog.Nop())

		require.NoError(t, svc.DeleteImage(context.Background(), "abc"))
		assert.Equal(t, []string{"gallery/y"}, mediaSvc.destroyed)
		assert.Empty(t, repo.images)
	})

	t.Run("unknown id leaves collection unchanged", func(t *testing.T) {
		repo := &fakeGalleryRepo{images: []model.GalleryImage{existing}}
		mediaSvc := &fakeMediaService{}
		svc := NewGalleryService(repo, mediaSvc, zerolog.Nop())

		err := svc.DeleteImage(context.Background(), "nope")
		var apiErr errs.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
		assert.Len(t, repo.images, 1)
		assert.Empty(t, mediaSvc.destroyed, "media host must not be called")
	})

	t.Run("media host failure keeps the record", func(t *testing.T) {
		repo := &fakeGalleryRepo{images: []model.GalleryImage{existing}}
		mediaSvc := &fakeMediaService{err: errors.New("cloudinary unavailable")}
		svc := NewGalleryService(repo, mediaSvc, zerolog.Nop())

		err := svc.DeleteImage(context.Background(), "abc")
		var apiErr errs.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 500, apiErr.Status)
		assert.Len(t, repo.images, 1, "record must survive a failed asset deletion")
	})
}

func TestGalleryServiceListImages(t *testing.T) {
	t.Run("empty collection yields empty slice", func(t *testing.T) {
		svc := NewGalleryService(&fakeGalleryRepo{}, &fakeMediaService{}, zerolog.Nop())

		images, err := svc.ListImages()
		require.NoError(t, err)
		assert.NotNil(t, images)
		assert.Empty(t, images)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc := NewGalleryService(&fakeGalleryRepo{err: errors.New("down")}, &fakeMediaService{}, zerolog.Nop())

		_, err := svc.ListImages()
		var apiErr errs.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 500, apiErr.Status)
	})
}
