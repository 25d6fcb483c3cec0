package model

import (
	"time"
)

// GalleryImage references an asset already uploaded to the media host.
// PublicID is the host's handle for the asset and is needed to delete it.
type GalleryImage struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Src       string    `bson:"src" json:"src"`
	PublicID  string    `bson:"public_id" json:"publicId"`
	Alt       string    `bson:"alt" json:"alt"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
