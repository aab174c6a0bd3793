package model

// Item is a single entry on the packing list.
// ID is assigned by the store and never changes or gets reused.
type Item struct {
	ID          int64  `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Quantity    int    `json:"quantity" yaml:"quantity"`
	Packed      bool   `json:"packed" yaml:"packed"`
}

// StarterItems is the list a fresh session opens with unless a seed or
// --empty says otherwise.
func StarterItems() []Item {
	return []Item{
		{ID: 1, Description: "Passports", Quantity: 2, Packed: false},
		{ID: 2, Description: "Socks", Quantity: 12, Packed: false},
	}
}
