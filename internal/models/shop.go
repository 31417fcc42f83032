package models

// ItemEffect describes how a shop item changes the pet. Nil fields leave the stat untouched.
type ItemEffect struct {
	Happiness *int `json:"happiness,omitempty"`
	Hunger    *int `json:"hunger,omitempty"`
}

// ShopItem is a read-only catalog entry
type ShopItem struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Icon   string     `json:"icon"`
	Price  int        `json:"price"`
	Effect ItemEffect `json:"effect"`
}
