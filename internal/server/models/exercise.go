package models

// Exercise is a catalog entry. The catalog is seeded by migration and
// read-only through the API.
type Exercise struct {
	ID          int64
	Name        string
	Description string
	Category    string
	MuscleGroup string
}
