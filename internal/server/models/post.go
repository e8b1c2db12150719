package models

import "time"

// DefaultPostCategory is applied when a new post names no category.
const DefaultPostCategory = "New"

// Post is a community place recommendation. CreatorID is nil for seeded
// content; ownerless posts are editable by any authenticated caller.
// Tags travel as an array on the wire and as a comma-joined string in the
// database (see JoinTags / SplitTags).
type Post struct {
	ID        int64     `json:"id"`
	CreatorID *int64    `json:"creatorID"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Message   string    `json:"message"`
	Image     *string   `json:"image"`
	Upvotes   int64     `json:"upvotes"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostPatch is a partial update: nil fields are left untouched. Counters are
// deliberately absent, upvotes move only through the upvote operation.
type PostPatch struct {
	Title    *string   `json:"title"`
	Location *string   `json:"location"`
	Category *string   `json:"category"`
	Tags     *[]string `json:"tags"`
	Message  *string   `json:"message"`
	Image    *string   `json:"image"`
}

// IsEmpty reports whether the patch carries no changes.
func (p *PostPatch) IsEmpty() bool {
	return p.Title == nil && p.Location == nil && p.Category == nil &&
		p.Tags == nil && p.Message == nil && p.Image == nil
}
