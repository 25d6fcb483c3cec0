package model

import (
	"time"
)

// BlogPost is a blog entry stored in the "blogs" collection. The slug is the
// public lookup key and is unique across all posts.
type BlogPost struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Excerpt       string    `bson:"excerpt" json:"excerpt"`
	Content       string    `bson:"content" json:"content"`
	Category      string    `bson:"category" json:"category"`
	Slug          string    `bson:"slug" json:"slug"`
	FeaturedImage string    `bson:"featured_image,omitempty" json:"featuredImage,omitempty"`
	Author        string    `bson:"author" json:"author"`
	ReadTime      int       `bson:"read_time,omitempty" json:"readTime,omitempty"`
	Tags          []string  `bson:"tags" json:"tags"`
	PublishDate   time.Time `bson:"publish_date" json:"publishDate"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// BlogSummary is the projection served to the admin listing.
type BlogSummary struct {
	ID    string `bson:"_id" json:"id"`
	Title string `bson:"title" json:"title"`
	Slug  string `bson:"slug" json:"slug"`
}
