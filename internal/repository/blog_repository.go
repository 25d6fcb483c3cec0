package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Aayush349/skybm-backend/internal/model"
)

const blogCollection = "blogs"

type BlogRepository struct {
	*MongoRepository[model.BlogPost]
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{
		MongoRepository: NewMongoRepository[model.BlogPost](db, blogCollection),
	}
}

func (r *BlogRepository) FindAllByPublishDateDesc() ([]model.BlogPost, error) {
	return r.FindAllSorted("publish_date", -1)
}

func (r *BlogRepository) FindBySlug(slug string) (model.BlogPost, error) {
	return r.FindOneBy("slug", slug)
}

func (r *BlogRepository) ExistsBySlug(slug string) (bool, error) {
	return r.ExistsBy("slug", slug)
}

func (r *BlogRepository) DeleteBySlug(slug string) (int64, error) {
	return r.DeleteOneBy("slug", slug)
}

// FindSummariesByCreatedDesc projects every post down to id, title and slug,
// newest first.
func (r *BlogRepository) FindSummariesByCreatedDesc() ([]model.BlogSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"title": 1, "slug": 1})

	cursor, err := r.Collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []model.BlogSummary
	if err = cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
