package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDs(t *testing.T) {
	raw := uuid.New()

	t.Run("valid", func(t *testing.T) {
		pid, err := ParsePostID(raw.String())
		require.NoError(t, err)
		assert.Equal(t, raw.String(), pid.String())

		aid, err := ParseAuthorID(raw.String())
		require.NoError(t, err)
		assert.Equal(t, raw.String(), aid.String())

		cid, err := ParseCommentID(raw.String())
		require.NoError(t, err)
		assert.Equal(t, raw.String(), cid.String())
	})

	t.Run("malformed", func(t *testing.T) {
		for _, s := range []string{"", "1", "not-a-uuid", raw.String() + "0"} {
			_, err := ParsePostID(s)
			assert.Error(t, err, s)
		}
	})

	t.Run("json", func(t *testing.T) {
		c := Comment{ID: CommentID(uuid.New()), PostID: PostID(raw), Title: "t", Text: "x"}
		data, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"postId":"`+raw.String()+`"`)

		var decoded Comment
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, c, decoded)
	})
}

func TestAuthorSnapshot(t *testing.T) {
	a := &Author{ID: AuthorID(uuid.New()), Name: "Jane", Email: "jane@example.com"}
	snap := a.Snapshot()

	a.Name = "Changed"
	assert.Equal(t, "Jane", snap.Name)
	assert.Equal(t, a.ID, snap.ID)
	assert.Equal(t, "jane@example.com", snap.Email)
}

func TestPostDetailViewDates(t *testing.T) {
	instant := time.Date(2026, time.January, 1, 3, 4, 5, 600000000, time.UTC)

	t.Run("utc", func(t *testing.T) {
		var v PostDetailView
		v.SetDate(instant, time.UTC)
		assert.Equal(t, "Thursday, January 1, 2026", v.HumanReadableDate)
		assert.Equal(t, "2026-01-01T03:04:05.600Z", v.ISODate)
		assert.True(t, v.Date.Equal(instant))
	})

	t.Run("human date follows location, iso stays utc", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		var v PostDetailView
		v.SetDate(instant, loc)
		assert.Equal(t, "Wednesday, December 31, 2025", v.HumanReadableDate)
		assert.Equal(t, "2026-01-01T03:04:05.600Z", v.ISODate)
	})

	t.Run("nil location", func(t *testing.T) {
		var v PostDetailView
		v.SetDate(instant, nil)
		assert.Equal(t, HumanReadableDate(instant, time.Local), v.HumanReadableDate)
	})
}

func TestPostFormValidation(t *testing.T) {
	tests := []struct {
		name    string
		form    PostForm
		isNew   bool
		wantErr []string
	}{
		{
			name:  "valid new post",
			form:  PostForm{Author: uuid.NewString(), Title: "Title", Summary: "Summary", Content: "Body"},
			isNew: true,
		},
		{
			name: "valid edit without author",
			form: PostForm{Title: "Title", Summary: "Summary", Content: "Body"},
		},
		{
			name:    "new post needs author",
			form:    PostForm{Title: "Title", Summary: "Summary", Content: "Body"},
			isNew:   true,
			wantErr: []string{"author"},
		},
		{
			name:    "blank title",
			form:    PostForm{Title: "   ", Summary: "Summary", Content: "Body"},
			wantErr: []string{"title"},
		},
		{
			name:    "summary too long",
			form:    PostForm{Title: "Title", Summary: string(make([]byte, 251)), Content: "Body"},
			wantErr: []string{"summary"},
		},
		{
			name:    "missing content",
			form:    PostForm{Title: "Title", Summary: "Summary"},
			wantErr: []string{"content"},
		},
		{
			name:    "whitespace-only content",
			form:    PostForm{Title: "Title", Summary: "Summary", Content: " \n\t "},
			wantErr: []string{"content"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.isNew {
				err = tt.form.ValidateNew()
			} else {
				err = tt.form.Validate()
			}
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			details := ValidationDetails(err)
			for _, field := range tt.wantErr {
				assert.Contains(t, details, field)
			}
		})
	}
}

func TestCommentFormValidation(t *testing.T) {
	valid := CommentForm{Title: "Nice", Text: "Great post"}
	assert.NoError(t, valid.Validate())

	empty := CommentForm{}
	err := empty.Validate()
	require.Error(t, err)
	details := ValidationDetails(err)
	assert.Equal(t, "is required", details["title"])
	assert.Equal(t, "is required", details["text"])

	blank := CommentForm{Title: "Nice", Text: "  \n "}
	details = ValidationDetails(blank.Validate())
	assert.Equal(t, "is required", details["text"])

	long := CommentForm{Title: "t", Text: string(make([]byte, 1001))}
	details = ValidationDetails(long.Validate())
	assert.Equal(t, "must be at most 1000 characters", details["text"])

	assert.Nil(t, ValidationDetails(nil))
}
