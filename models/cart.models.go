package models

// CartItem represents one ingredient line in a cart. Text is the unique key
// within a cart; adding the same ingredient again increments Qty instead of
// appending a second line.
type CartItem struct {
	Text    string `bson:"text" json:"text"`
	Qty     int    `bson:"qty" json:"qty"`
	Checked bool   `bson:"checked" json:"checked"`
}

// Cart represents a user's shopping cart, one document per username
type Cart struct {
	Username string     `bson:"username" json:"username"`
	Items    []CartItem `bson:"items" json:"items"`
}
