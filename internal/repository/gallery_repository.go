package repository

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Aayush349/skybm-backend/internal/model"
)

const galleryCollection = "gallery_images"

type GalleryRepository struct {
	*MongoRepository[model.GalleryImage]
}

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{
		MongoRepository: NewMongoRepository[model.GalleryImage](db, galleryCollection),
	}
}

func (r *GalleryRepository) FindAllByCreatedDesc() ([]model.GalleryImage, error) {
	return r.FindAllSorted("created_at", -1)
}

func (r *GalleryRepository) DeleteById(id string) (int64, error) {
	return r.DeleteOneBy("_id", id)
}
