package model

//
// Post record shape.
//
// Post is the one shape without the mapping codec: it is only built
// from typed arguments supplied by the caller and is serialized as a
// request body through its struct tags. There is no
// NewPostFromMapping and no ToMapping.
//

// Post is a post to create or update on the server.
type Post struct {
	// UserID is the ID of the user authoring the post.
	UserID int64 `json:"userId"`

	// ID is the unique post ID, zero until the server assigns one.
	ID int64 `json:"id"`

	// Title is the post title.
	Title string `json:"title"`

	// Body is the post text.
	Body string `json:"body"`
}

// NewPost constructs a [Post] from fully-specified typed arguments,
// leaving the ID for the server to assign.
func NewPost(userID int64, title, body string) Post {
	return Post{
		UserID: userID,
		ID:     0,
		Title:  title,
		Body:   body,
	}
}
