package model

//
// Photo record shape.
//
// Photo started out with just the typed constructor below; the mapping
// codec was layered on afterwards without touching that path, so both
// construction styles remain available.
//

import "github.com/placefetch/placefetch/internal/mapx"

// Photo is a photo inside an album.
type Photo struct {
	// AlbumID is the ID of the album containing the photo.
	AlbumID int64

	// ID is the unique photo ID.
	ID int64

	// Title is the photo caption.
	Title string

	// URL locates the full-size image.
	URL string

	// ThumbnailURL locates the thumbnail image.
	ThumbnailURL string
}

// NewPhoto constructs a [Photo] from fully-specified typed arguments.
func NewPhoto(albumID, id int64, title, URL, thumbnailURL string) Photo {
	return Photo{
		AlbumID:      albumID,
		ID:           id,
		Title:        title,
		URL:          URL,
		ThumbnailURL: thumbnailURL,
	}
}

var photoSchema = mapx.NewSchema(
	mapx.Field{Key: "albumId", Kind: mapx.KindInt},
	mapx.Field{Key: "id", Kind: mapx.KindInt},
	mapx.Field{Key: "title", Kind: mapx.KindString},
	mapx.Field{Key: "url", Kind: mapx.KindString},
	mapx.Field{Key: "thumbnailUrl", Kind: mapx.KindString},
)

// NewPhotoFromMapping constructs a [Photo] from an untyped mapping.
//
// It either returns a fully populated photo or a [*mapx.ErrFieldValidation]
// when any required field is missing or has the wrong kind.
func NewPhotoFromMapping(input mapx.Mapping) (Photo, error) {
	values, err := photoSchema.Validate(input)
	if err != nil {
		return Photo{}, err
	}
	photo := NewPhoto(
		values.Int("albumId"),
		values.Int("id"),
		values.String("title"),
		values.String("url"),
		values.String("thumbnailUrl"),
	)
	return photo, nil
}

var _ MappingEncoder = Photo{}

// ToMapping implements [MappingEncoder].
func (p Photo) ToMapping() mapx.Mapping {
	return mapx.Mapping{
		"albumId":      p.AlbumID,
		"id":           p.ID,
		"title":        p.Title,
		"url":          p.URL,
		"thumbnailUrl": p.ThumbnailURL,
	}
}
