package model

//
// Comment record shape.
//

import "github.com/placefetch/placefetch/internal/mapx"

// Comment is a comment attached to a post.
type Comment struct {
	// PostID is the ID of the post the comment belongs to.
	PostID int64

	// ID is the unique comment ID.
	ID int64

	// Name is the comment title.
	Name string

	// Email is the author's email address.
	Email string

	// Body is the comment text.
	Body string
}

var commentSchema = mapx.NewSchema(
	mapx.Field{Key: "postId", Kind: mapx.KindInt},
	mapx.Field{Key: "id", Kind: mapx.KindInt},
	mapx.Field{Key: "name", Kind: mapx.KindString},
	mapx.Field{Key: "email", Kind: mapx.KindString},
	mapx.Field{Key: "body", Kind: mapx.KindString},
)

// NewCommentFromMapping constructs a [Comment] from an untyped mapping.
//
// It either returns a fully populated comment or a [*mapx.ErrFieldValidation]
// when any required field is missing or has the wrong kind.
func NewCommentFromMapping(input mapx.Mapping) (Comment, error) {
	values, err := commentSchema.Validate(input)
	if err != nil {
		return Comment{}, err
	}
	comment := Comment{
		PostID: values.Int("postId"),
		ID:     values.Int("id"),
		Name:   values.String("name"),
		Email:  values.String("email"),
		Body:   values.String("body"),
	}
	return comment, nil
}

var _ MappingEncoder = Comment{}

// ToMapping implements [MappingEncoder].
func (c Comment) ToMapping() mapx.Mapping {
	return mapx.Mapping{
		"postId": c.PostID,
		"id":     c.ID,
		"name":   c.Name,
		"email":  c.Email,
		"body":   c.Body,
	}
}
