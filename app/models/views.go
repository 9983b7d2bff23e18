package models

import "time"

const (
	humanDateLayout = "Monday, January 2, 2006"
	isoDateLayout   = "2006-01-02T15:04:05.000Z07:00"
)

// PostSummaryView is the listing shape of a post: no body, no author contact.
type PostSummaryView struct {
	ID      PostID `json:"_id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Author  struct {
		Name string `json:"name"`
	} `json:"author"`
}

// PostDetailView is the detail shape of a post. The summary is withheld and
// both dates are derived from Date on every read.
type PostDetailView struct {
	ID                PostID         `json:"_id"`
	Title             string         `json:"title"`
	Body              string         `json:"body"`
	Author            AuthorSnapshot `json:"author"`
	Date              time.Time      `json:"-"`
	HumanReadableDate string         `json:"humanReadableDate"`
	ISODate           string         `json:"date"`
}

// PostEditView carries only the editable fields of a post.
type PostEditView struct {
	ID      PostID `json:"_id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Body    string `json:"body"`
}

// CommentView is the wire shape of a comment.
type CommentView struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// SetDate records the stored instant and derives the presentation dates from
// it. The human readable form uses loc; the ISO form is always UTC.
func (v *PostDetailView) SetDate(t time.Time, loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	v.Date = t
	v.HumanReadableDate = HumanReadableDate(t, loc)
	v.ISODate = ISODate(t)
}

// HumanReadableDate formats t like "Wednesday, October 14, 2026".
func HumanReadableDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(humanDateLayout)
}

// ISODate formats t in UTC with millisecond precision.
func ISODate(t time.Time) string {
	return t.UTC().Format(isoDateLayout)
}
