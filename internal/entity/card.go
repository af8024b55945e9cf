package entity

// Priority bounds for cards. Lower values mean higher importance: a
// priority-1 card is the least known and is always served first.
const (
	PriorityHighest = 1
	PriorityLowest  = 4
)

// Card is a single flashcard. Cards are immutable once loaded; a review
// session never modifies them.
type Card struct {
	Subject  string
	Question string
	Answer   string
	Priority int
}

// CardInput is the parsed form of one deck record before validation.
// Priority is a pointer so an absent field can be told apart from an
// explicit zero.
type CardInput struct {
	Subject  string
	Question string
	Answer   string
	Priority *int
}
