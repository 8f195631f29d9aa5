package models

// Part represents a spare part from the parts catalog.
// Price is carried for reference but not used by any aggregation.
type Part struct {
	ID       string  `json:"id" bson:"id"`
	Name     string  `json:"name" bson:"name"`
	Code     string  `json:"code" bson:"code"`
	Category string  `json:"category" bson:"category"`
	Price    float64 `json:"price" bson:"price"`
}

// PartUsage records how many units of a part were consumed by one incident.
// An incident holds at most one entry per part.
type PartUsage struct {
	PartID   string `json:"partId" bson:"partId"`
	Quantity int    `json:"quantity" bson:"quantity"`
}
