package models

// Industry is a catalog sector organisations belong to.
type Industry struct {
	ID   int64
	Name string
}

// Skill is a catalog competency referenced by preferences.
type Skill struct {
	ID   int64
	Name string
}
