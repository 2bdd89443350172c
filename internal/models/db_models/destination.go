package db_models

import (
	"strings"

	"github.com/pgvector/pgvector-go"
)

// Destination is a place somebody looked up. The map view and similarity search read from it.
type Destination struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null"`
	DisplayName string
	Address     string
	Latitude    float64
	Longitude   float64
	PhotoURL    string
	PlaceID     string
	Lookups     int64 `gorm:"default:0"`

	// EmbeddingModel tags Embedding; search only compares vectors from the same model.
	EmbeddingModel string           `gorm:"index"`
	Embedding      *pgvector.Vector `gorm:"type:vector"`
}

// NormalizeDestination is the key shared by the photo cache and the catalogue.
func NormalizeDestination(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
