// Package models contains the GORM persistence models. They are kept
// separate from the domain entities and map both ways via ToDomain and
// FromDomain so that storage concerns (column types, compound unique
// indexes) never leak into the domain layer.
package models
