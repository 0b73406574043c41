// Package domain holds the pantry entities and the registers that own them.
package domain

import "github.com/google/uuid"

// Model carries the identity shared by every entity. The key never changes
// after construction; two models are the same entity iff their keys match.
type Model struct {
	key string
	// ID is the persisted row id, zero when the entity only lives in memory.
	ID int64
}

func newModel(key string) Model { return Model{key: key} }

// generatedModel returns a model with a random key, for entities without a
// natural key.
func generatedModel() Model { return Model{key: uuid.NewString()} }

func (m Model) Key() string { return m.key }
