package placeapi

//
// post.go - create, replace, and delete posts.
//

import (
	"context"

	"github.com/pkg/errors"
	"github.com/placefetch/placefetch/internal/httpclientx"
	"github.com/placefetch/placefetch/internal/model"
)

// assignedID is the part of the server response we care about after
// creating or replacing a post.
type assignedID struct {
	ID int64 `json:"id"`
}

// CreatePost creates a new post and returns the ID the server
// assigned to it.
//
// The [model.Post] travels as a JSON request body; the server response
// is never turned into a [model.Post] because that shape is only built
// from typed caller arguments.
func (c *Client) CreatePost(ctx context.Context, post model.Post) (int64, error) {
	resp, err := httpclientx.PostJSON[model.Post, *assignedID](
		ctx, c.endpoint("posts"), c.config, post)
	if err != nil {
		return 0, errors.Wrap(err, "create post")
	}
	return resp.ID, nil
}

// UpdatePost replaces the post with the given ID.
func (c *Client) UpdatePost(ctx context.Context, id int64, post model.Post) error {
	_, err := httpclientx.PutJSON[model.Post, *assignedID](
		ctx, c.endpoint("posts", formatID(id)), c.config, post)
	if err != nil {
		return errors.Wrap(err, "update post")
	}
	return nil
}

// DeletePost deletes the post with the given ID.
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	if err := httpclientx.Delete(ctx, c.endpoint("posts", formatID(id)), c.config); err != nil {
		return errors.Wrap(err, "delete post")
	}
	return nil
}
