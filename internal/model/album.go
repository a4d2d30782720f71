package model

//
// Album record shape.
//

import "github.com/placefetch/placefetch/internal/mapx"

// Album is a named collection of photos.
type Album struct {
	// UserID is the ID of the user owning the album.
	UserID int64

	// ID is the unique album ID.
	ID int64

	// Title is the album title.
	Title string
}

// DefaultAlbum constructs an [Album] with fixed default field values.
//
// Use it when no construction arguments are available at all; the
// returned record is always the same.
func DefaultAlbum() Album {
	return Album{
		UserID: 1,
		ID:     1,
		Title:  "quidem molestiae enim",
	}
}

var albumSchema = mapx.NewSchema(
	mapx.Field{Key: "userId", Kind: mapx.KindInt},
	mapx.Field{Key: "id", Kind: mapx.KindInt},
	mapx.Field{Key: "title", Kind: mapx.KindString},
)

// NewAlbumFromMapping constructs an [Album] from an untyped mapping.
//
// It either returns a fully populated album or a [*mapx.ErrFieldValidation]
// when any required field is missing or has the wrong kind.
func NewAlbumFromMapping(input mapx.Mapping) (Album, error) {
	values, err := albumSchema.Validate(input)
	if err != nil {
		return Album{}, err
	}
	album := Album{
		UserID: values.Int("userId"),
		ID:     values.Int("id"),
		Title:  values.String("title"),
	}
	return album, nil
}

var _ MappingEncoder = Album{}

// ToMapping implements [MappingEncoder].
func (a Album) ToMapping() mapx.Mapping {
	return mapx.Mapping{
		"userId": a.UserID,
		"id":     a.ID,
		"title":  a.Title,
	}
}
