package models

// Plant is a single plant in a user's collection. Timestamps are RFC3339
// strings as stored by the clients; unparseable values degrade to "no date"
// at the point of use instead of failing the whole document.
type Plant struct {
	ID        string `json:"id" bson:"id"`
	UserID    string `json:"-" bson:"userId"`
	Name      string `json:"name" bson:"name"`
	Type      string `json:"type" bson:"type"`
	Photo     string `json:"photo,omitempty" bson:"photo,omitempty"`
	DateAdded string `json:"dateAdded" bson:"dateAdded"`
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty"`
}
