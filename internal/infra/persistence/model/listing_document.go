package model

import (
	"time"

	"github.com/paulmach/orb/geojson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImageDocument is the embedded picture descriptor of a listing.
type ImageDocument struct {
	URL      string `bson:"url"`
	Filename string `bson:"filename"`
}

// ListingDocument mirrors a document of the 'listings' collection.
// Geometry is stored as GeoJSON so the collection can carry a 2dsphere index.
type ListingDocument struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Title       string               `bson:"title"`
	Description string               `bson:"description"`
	Image       ImageDocument        `bson:"image"`
	Price       float64              `bson:"price"`
	Location    string               `bson:"location"`
	Country     string               `bson:"country"`
	Category    string               `bson:"category,omitempty"`
	Geometry    *geojson.Geometry    `bson:"geometry"`
	Owner       string               `bson:"owner"`
	Reviews     []primitive.ObjectID `bson:"reviews"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

// ReviewDocument mirrors a document of the 'reviews' collection.
type ReviewDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Body      string             `bson:"body"`
	Rating    int                `bson:"rating"`
	Author    string             `bson:"author"`
	CreatedAt time.Time          `bson:"createdAt"`
}
