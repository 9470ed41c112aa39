package entity

// Book is one bestseller entry merged with locally persisted user state.
// Identity is the ISBN alone: two books are the same record iff their
// ISBNs match, whatever the other fields say.
type Book struct {
	ISBN               string  `json:"isbn"`
	Title              string  `json:"title"`
	Author             string  `json:"author"`
	Rating             int     `json:"rating"`
	ImageURL           string  `json:"imageUrl"`
	IsFavourite        bool    `json:"isFavourite"`
	Price              float64 `json:"price"`
	ListName           string  `json:"listName"`
	EncodedListName    string  `json:"encodedListName"`
	RatingPriceChanged bool    `json:"ratingPriceChanged"`
}
