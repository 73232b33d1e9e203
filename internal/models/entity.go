package models

// Entity is satisfied by every persisted record type.
type Entity interface {
	GetID() uint
}
