package models

// FirstDataRow is the sheet row number of the first data row; row 1 is the
// header.
const FirstDataRow = 2

type Suggestion struct {
	Row         int    `json:"row"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Likes       int    `json:"likes"`
}

// Card is the legacy read-only projection of a Suggestion, kept for older
// frontend clients that still speak cards/votes.
type Card struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Votes    int    `json:"votes"`
}

func (s Suggestion) AsCard() Card {
	return Card{
		ID:       s.Row,
		Title:    s.Title,
		Subtitle: s.Description,
		Votes:    s.Likes,
	}
}
