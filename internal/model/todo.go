package model

//
// Todo record shape.
//

import "github.com/placefetch/placefetch/internal/mapx"

// Todo is an entry in a user's todo list.
type Todo struct {
	// UserID is the ID of the user owning the todo.
	UserID int64

	// ID is the unique todo ID.
	ID int64

	// Title is the todo text.
	Title string

	// Completed indicates whether the todo is done.
	Completed bool
}

var todoSchema = mapx.NewSchema(
	mapx.Field{Key: "userId", Kind: mapx.KindInt},
	mapx.Field{Key: "id", Kind: mapx.KindInt},
	mapx.Field{Key: "title", Kind: mapx.KindString},
	mapx.Field{Key: "completed", Kind: mapx.KindBool},
)

// NewTodoFromMapping constructs a [Todo] from an untyped mapping.
//
// It either returns a fully populated todo or a [*mapx.ErrFieldValidation]
// when any required field is missing or has the wrong kind.
func NewTodoFromMapping(input mapx.Mapping) (Todo, error) {
	values, err := todoSchema.Validate(input)
	if err != nil {
		return Todo{}, err
	}
	todo := Todo{
		UserID:    values.Int("userId"),
		ID:        values.Int("id"),
		Title:     values.String("title"),
		Completed: values.Bool("completed"),
	}
	return todo, nil
}

var _ MappingEncoder = Todo{}

// ToMapping implements [MappingEncoder].
func (t Todo) ToMapping() mapx.Mapping {
	return mapx.Mapping{
		"userId":    t.UserID,
		"id":        t.ID,
		"title":     t.Title,
		"completed": t.Completed,
	}
}
