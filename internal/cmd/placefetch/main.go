// Command placefetch is a strictly typed command line client for
// JSONPlaceholder-like services.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/placefetch/placefetch/internal/model"
	"github.com/placefetch/placefetch/internal/must"
	"github.com/placefetch/placefetch/internal/placeapi"
)

var (
	app     = kingpin.New("placefetch", "Strictly typed JSONPlaceholder client.")
	verbose = app.Flag("verbose", "Enable verbose log output.").Short('v').Bool()
	baseURL = app.Flag("base-url", "Service base URL.").
		Default("https://jsonplaceholder.typicode.com").String()

	commentCmd = app.Command("comment", "Fetch a comment by ID.")
	commentID  = commentCmd.Arg("id", "Comment ID.").Required().Int64()

	commentsCmd    = app.Command("comments", "Fetch the comments of a post.")
	commentsPostID = commentsCmd.Arg("post-id", "Post ID.").Required().Int64()

	todoCmd = app.Command("todo", "Fetch a todo by ID.")
	todoID  = todoCmd.Arg("id", "Todo ID.").Required().Int64()

	photoCmd = app.Command("photo", "Fetch a photo by ID.")
	photoID  = photoCmd.Arg("id", "Photo ID.").Required().Int64()

	albumCmd = app.Command("album", "Fetch an album by ID.")
	albumID  = albumCmd.Arg("id", "Album ID.").Required().Int64()

	createPostCmd    = app.Command("create-post", "Create a new post.")
	createPostUserID = createPostCmd.Flag("user-id", "Authoring user ID.").Default("1").Int64()
	createPostTitle  = createPostCmd.Arg("title", "Post title.").Required().String()
	createPostBody   = createPostCmd.Arg("body", "Post body.").Required().String()

	updatePostCmd    = app.Command("update-post", "Replace an existing post.")
	updatePostID     = updatePostCmd.Arg("id", "Post ID.").Required().Int64()
	updatePostUserID = updatePostCmd.Flag("user-id", "Authoring user ID.").Default("1").Int64()
	updatePostTitle  = updatePostCmd.Arg("title", "Post title.").Required().String()
	updatePostBody   = updatePostCmd.Arg("body", "Post body.").Required().String()

	deletePostCmd = app.Command("delete-post", "Delete a post by ID.")
	deletePostID  = deletePostCmd.Arg("id", "Post ID.").Required().Int64()
)

// printMapping prints a decode-capable record using its wire keys.
func printMapping(record model.MappingEncoder) {
	fmt.Printf("%s\n", string(must.MarshalAndIndentJSON(record.ToMapping(), "", "    ")))
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetHandler(cli.Default)
	log.SetLevel(log.InfoLevel)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	ctx := context.Background()
	client := placeapi.NewClient(*baseURL, log.Log, http.DefaultClient)
	defer client.CloseIdleConnections()

	switch command {
	case commentCmd.FullCommand():
		comment, err := client.GetComment(ctx, *commentID)
		fatalOnError(err)
		printMapping(comment)

	case commentsCmd.FullCommand():
		comments, err := client.GetComments(ctx, *commentsPostID)
		fatalOnError(err)
		for _, comment := range comments {
			printMapping(comment)
		}

	case todoCmd.FullCommand():
		todo, err := client.GetTodo(ctx, *todoID)
		fatalOnError(err)
		printMapping(todo)

	case photoCmd.FullCommand():
		photo, err := client.GetPhoto(ctx, *photoID)
		fatalOnError(err)
		printMapping(photo)

	case albumCmd.FullCommand():
		album, err := client.GetAlbum(ctx, *albumID)
		fatalOnError(err)
		printMapping(album)

	case createPostCmd.FullCommand():
		post := model.NewPost(*createPostUserID, *createPostTitle, *createPostBody)
		id, err := client.CreatePost(ctx, post)
		fatalOnError(err)
		log.Infof("created post %d", id)

	case updatePostCmd.FullCommand():
		post := model.NewPost(*updatePostUserID, *updatePostTitle, *updatePostBody)
		fatalOnError(client.UpdatePost(ctx, *updatePostID, post))
		log.Infof("updated post %d", *updatePostID)

	case deletePostCmd.FullCommand():
		fatalOnError(client.DeletePost(ctx, *deletePostID))
		log.Infof("deleted post %d", *deletePostID)
	}
}

func fatalOnError(err error) {
	if err != nil {
		log.WithError(err).Fatal("request failed")
	}
}
