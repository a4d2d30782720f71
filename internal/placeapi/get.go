package placeapi

//
// get.go - fetch and strictly decode resources.
//

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	"github.com/placefetch/placefetch/internal/httpclientx"
	"github.com/placefetch/placefetch/internal/model"
)

// GetComment fetches the comment with the given ID.
func (c *Client) GetComment(ctx context.Context, id int64) (model.Comment, error) {
	mapping, err := httpclientx.GetMapping(ctx, c.endpoint("comments", formatID(id)), c.config)
	if err != nil {
		return model.Comment{}, errors.Wrap(err, "get comment")
	}
	comment, err := model.NewCommentFromMapping(mapping)
	if err != nil {
		return model.Comment{}, errors.Wrap(err, "decode comment")
	}
	return comment, nil
}

// GetComments fetches every comment attached to the given post.
//
// Decoding is all-or-nothing across the whole list: one invalid entry
// fails the entire call.
func (c *Client) GetComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	query := url.Values{}
	query.Set("postId", formatID(postID))
	mappings, err := httpclientx.GetMappingList(ctx, c.endpointWithQuery(query, "comments"), c.config)
	if err != nil {
		return nil, errors.Wrap(err, "get comments")
	}
	comments := make([]model.Comment, 0, len(mappings))
	for _, mapping := range mappings {
		comment, err := model.NewCommentFromMapping(mapping)
		if err != nil {
			return nil, errors.Wrap(err, "decode comments")
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

// GetTodo fetches the todo with the given ID.
func (c *Client) GetTodo(ctx context.Context, id int64) (model.Todo, error) {
	mapping, err := httpclientx.GetMapping(ctx, c.endpoint("todos", formatID(id)), c.config)
	if err != nil {
		return model.Todo{}, errors.Wrap(err, "get todo")
	}
	todo, err := model.NewTodoFromMapping(mapping)
	if err != nil {
		return model.Todo{}, errors.Wrap(err, "decode todo")
	}
	return todo, nil
}

// GetPhoto fetches the photo with the given ID.
func (c *Client) GetPhoto(ctx context.Context, id int64) (model.Photo, error) {
	mapping, err := httpclientx.GetMapping(ctx, c.endpoint("photos", formatID(id)), c.config)
	if err != nil {
		return model.Photo{}, errors.Wrap(err, "get photo")
	}
	photo, err := model.NewPhotoFromMapping(mapping)
	if err != nil {
		return model.Photo{}, errors.Wrap(err, "decode photo")
	}
	return photo, nil
}

// GetAlbum fetches the album with the given ID.
func (c *Client) GetAlbum(ctx context.Context, id int64) (model.Album, error) {
	mapping, err := httpclientx.GetMapping(ctx, c.endpoint("albums", formatID(id)), c.config)
	if err != nil {
		return model.Album{}, errors.Wrap(err, "get album")
	}
	album, err := model.NewAlbumFromMapping(mapping)
	if err != nil {
		return model.Album{}, errors.Wrap(err, "decode album")
	}
	return album, nil
}
