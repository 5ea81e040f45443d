// Package feature describes derived weather columns. Each descriptor names
// its generated column deterministically, which is how engineered columns
// stay addressable across train, validation, and test tables.
package feature

type FeatureType int

const (
	FeatureTypeLag FeatureType = iota
	FeatureTypeRolling
	FeatureTypeSeasonality
	FeatureTypeInteraction
	FeatureTypeHoliday
)

type Feature interface {
	String() string
	Get(string) (string, bool)
	Type() FeatureType
}
