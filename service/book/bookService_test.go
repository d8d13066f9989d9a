// service/book/book_service_test.go
package booksvc_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"librarymgmt/model"
	booksvc "librarymgmt/service/book"
	"librarymgmt/util/queue"
)

type repoMock struct {
	listFn   func(ctx context.Context, skip, limit int) ([]model.Book, error)
	getFn    func(ctx context.Context, id int64) (*model.Book, error)
	createFn func(ctx context.Context, b *model.Book) error
	updateFn func(ctx context.Context, id int64, upd model.BookUpdate) (*model.Book, error)
	deleteFn func(ctx context.Context, id int64) (*model.Book, error)
}

func (m *repoMock) List(ctx context.Context, skip, limit int) ([]model.Book, error) {
	return m.listFn(ctx, skip, limit)
}
func (m *repoMock) Get(ctx context.Context, id int64) (*model.Book, error) {
	return m.getFn(ctx, id)
}
func (m *repoMock) Create(ctx context.Context, b *model.Book) error {
	return m.createFn(ctx, b)
}
func (m *repoMock) Update(ctx context.Context, id int64, upd model.BookUpdate) (*model.Book, error) {
	return m.updateFn(ctx, id, upd)
}
func (m *repoMock) Delete(ctx context.Context, id int64) (*model.Book, error) {
	return m.deleteFn(ctx, id)
}

func nextEvent(t *testing.T, bus *queue.Bus) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ev, err := bus.Next(ctx)
	require.NoError(t, err)
	return ev
}

func sampleBook() *model.Book {
	g := model.GenreFiction
	return &model.Book{
		ID:            3,
		Title:         "T",
		Author:        "A",
		PublishedDate: model.NewDate(2025, time.January, 1),
		Genre:         &g,
	}
}

func TestList_PaginationBounds(t *testing.T) {
	bus := queue.New()
	s := booksvc.New(&repoMock{}, bus)
	ctx := context.Background()

	for _, tc := range []struct{ skip, limit int }{
		{-1, 10},
		{0, 0},
		{0, 101},
	} {
		_, err := s.List(ctx, tc.skip, tc.limit)
		require.ErrorIs(t, err, booksvc.ErrBadInput, "skip=%d limit=%d", tc.skip, tc.limit)
	}
	require.Equal(t, 0, bus.Len(), "no notification for rejected input")
}

func TestList_Success(t *testing.T) {
	bus := queue.New()
	m := &repoMock{
		listFn: func(ctx context.Context, skip, limit int) ([]model.Book, error) {
			require.Equal(t, 5, skip)
			require.Equal(t, 2, limit)
			return []model.Book{*sampleBook(), *sampleBook()}, nil
		},
	}
	s := booksvc.New(m, bus)

	books, err := s.List(context.Background(), 5, 2)
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.Equal(t, "Fetched 2 books. Displaying books 5 to 6.", nextEvent(t, bus))
}

func TestGet(t *testing.T) {
	bus := queue.New()

	t.Run("found", func(t *testing.T) {
		m := &repoMock{
			getFn: func(ctx context.Context, id int64) (*model.Book, error) { return sampleBook(), nil },
		}
		b, err := booksvc.New(m, bus).Get(context.Background(), 3)
		require.NoError(t, err)
		require.Equal(t, int64(3), b.ID)
		require.Equal(t, "Book fetched: T by A (ID: 3)", nextEvent(t, bus))
	})

	t.Run("missing", func(t *testing.T) {
		m := &repoMock{
			getFn: func(ctx context.Context, id int64) (*model.Book, error) { return nil, pgx.ErrNoRows },
		}
		_, err := booksvc.New(m, bus).Get(context.Background(), 99)
		require.ErrorIs(t, err, booksvc.ErrNotFound)
		require.Equal(t, 0, bus.Len())
	})
}

func TestCreate(t *testing.T) {
	t.Run("success publishes after insert", func(t *testing.T) {
		bus := queue.New()
		m := &repoMock{
			createFn: func(ctx context.Context, b *model.Book) error {
				b.ID = 3
				return nil
			},
		}
		g := model.GenreFiction
		b, err := booksvc.New(m, bus).Create(context.Background(), model.BookCreate{
			Title:         "T",
			Author:        "A",
			PublishedDate: model.NewDate(2025, time.January, 1),
			Genre:         &g,
		})
		require.NoError(t, err)
		require.Equal(t, int64(3), b.ID)
		require.Equal(t, "New book created: T by A (ID: 3)", nextEvent(t, bus))
	})

	t.Run("unknown genre rejected", func(t *testing.T) {
		bus := queue.New()
		g := model.Genre("Thriller")
		_, err := booksvc.New(&repoMock{}, bus).Create(context.Background(), model.BookCreate{
			Title: "T", Author: "A", PublishedDate: model.NewDate(2025, time.January, 1), Genre: &g,
		})
		require.ErrorIs(t, err, booksvc.ErrBadInput)
	})

	t.Run("store failure publishes nothing", func(t *testing.T) {
		bus := queue.New()
		m := &repoMock{
			createFn: func(ctx context.Context, b *model.Book) error { return errors.New("insert failed") },
		}
		_, err := booksvc.New(m, bus).Create(context.Background(), model.BookCreate{
			Title: "T", Author: "A", PublishedDate: model.NewDate(2025, time.January, 1),
		})
		require.Error(t, err)
		require.Equal(t, 0, bus.Len())
	})
}

func TestUpdate(t *testing.T) {
	t.Run("passes fields through and publishes", func(t *testing.T) {
		bus := queue.New()
		newTitle := "New"
		m := &repoMock{
			updateFn: func(ctx context.Context, id int64, upd model.BookUpdate) (*model.Book, error) {
				require.Equal(t, int64(3), id)
				require.NotNil(t, upd.Title)
				require.Nil(t, upd.Author)
				b := sampleBook()
				b.Title = *upd.Title
				return b, nil
			},
		}
		b, err := booksvc.New(m, bus).Update(context.Background(), 3, model.BookUpdate{Title: &newTitle})
		require.NoError(t, err)
		require.Equal(t, "New", b.Title)
		require.Equal(t, "Book updated: New by A (ID: 3)", nextEvent(t, bus))
	})

	t.Run("missing id", func(t *testing.T) {
		bus := queue.New()
		m := &repoMock{
			updateFn: func(ctx context.Context, id int64, upd model.BookUpdate) (*model.Book, error) {
				return nil, pgx.ErrNoRows
			},
		}
		_, err := booksvc.New(m, bus).Update(context.Background(), 99, model.BookUpdate{})
		require.ErrorIs(t, err, booksvc.ErrNotFound)
		require.Equal(t, 0, bus.Len())
	})
}

func TestDelete(t *testing.T) {
	t.Run("returns prior record", func(t *testing.T) {
		bus := queue.New()
		m := &repoMock{
			deleteFn: func(ctx context.Context, id int64) (*model.Book, error) { return sampleBook(), nil },
		}
		b, err := booksvc.New(m, bus).Delete(context.Background(), 3)
		require.NoError(t, err)
		require.Equal(t, "T", b.Title)
		require.Equal(t, "Book deleted: T by A (ID: 3)", nextEvent(t, bus))
	})

	t.Run("second delete is not found", func(t *testing.T) {
		bus := queue.New()
		deleted := false
		m := &repoMock{
			deleteFn: func(ctx context.Context, id int64) (*model.Book, error) {
				if deleted {
					return nil, pgx.ErrNoRows
				}
				deleted = true
				return sampleBook(), nil
			},
		}
		s := booksvc.New(m, bus)
		_, err := s.Delete(context.Background(), 3)
		require.NoError(t, err)
		_, err = s.Delete(context.Background(), 3)
		require.ErrorIs(t, err, booksvc.ErrNotFound)
	})
}
