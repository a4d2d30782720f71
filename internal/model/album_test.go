package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultAlbum(t *testing.T) {
	t.Run("fields always equal the declared defaults", func(t *testing.T) {
		expect := Album{
			UserID: 1,
			ID:     1,
			Title:  "quidem molestiae enim",
		}

		for idx := 0; idx < 4; idx++ {
			if diff := cmp.Diff(expect, DefaultAlbum()); diff != "" {
				t.Fatal(diff)
			}
		}
	})

	t.Run("the default album round trips through the mapping codec", func(t *testing.T) {
		album := DefaultAlbum()

		again, err := NewAlbumFromMapping(album.ToMapping())
		if err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff(album, again); diff != "" {
			t.Fatal(diff)
		}
	})
}
