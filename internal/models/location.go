package models

// Location represents a customer site where machines are installed.
type Location struct {
	ID        string  `json:"id" bson:"id"`
	Name      string  `json:"name" bson:"name"`
	Address   string  `json:"address" bson:"address"`
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Company   string  `json:"company" bson:"company"`
}
