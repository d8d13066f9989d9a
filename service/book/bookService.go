package booksvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"librarymgmt/model"
	bookrepo "librarymgmt/repository/book"
	"librarymgmt/util/queue"
)

var (
	ErrNotFound = errors.New("book not found")
	ErrBadInput = errors.New("bad input")
)

type Repo interface {
	List(ctx context.Context, skip, limit int) ([]model.Book, error)
	Get(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, b *model.Book) error
	Update(ctx context.Context, id int64, upd model.BookUpdate) (*model.Book, error)
	Delete(ctx context.Context, id int64) (*model.Book, error)
}

var _ Repo = bookrepo.Repo(nil)

type Service interface {
	List(ctx context.Context, skip, limit int) ([]model.Book, error)
	Get(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, req model.BookCreate) (*model.Book, error)
	Update(ctx context.Context, id int64, req model.BookUpdate) (*model.Book, error)
	Delete(ctx context.Context, id int64) (*model.Book, error)
}

type service struct {
	r   Repo
	bus *queue.Bus
}

func New(r Repo, bus *queue.Bus) Service { return &service{r: r, bus: bus} }

// Notifications are published only after the store operation has
// succeeded, so stream consumers never see an event for a write that
// did not commit.

func (s *service) List(ctx context.Context, skip, limit int) ([]model.Book, error) {
	if skip < 0 || limit < 1 || limit > 100 {
		return nil, ErrBadInput
	}
	books, err := s.r.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	s.bus.Publish(fmt.Sprintf("Fetched %d books. Displaying books %d to %d.", len(books), skip, skip+len(books)-1))
	return books, nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	s.bus.Publish(fmt.Sprintf("Book fetched: %s by %s (ID: %d)", b.Title, b.Author, b.ID))
	return b, nil
}

func (s *service) Create(ctx context.Context, req model.BookCreate) (*model.Book, error) {
	if req.Genre != nil && !req.Genre.Valid() {
		return nil, ErrBadInput
	}
	b := &model.Book{
		Title:         req.Title,
		Author:        req.Author,
		PublishedDate: req.PublishedDate,
		Summary:       req.Summary,
		Genre:         req.Genre,
	}
	if err := s.r.Create(ctx, b); err != nil {
		return nil, err
	}
	s.bus.Publish(fmt.Sprintf("New book created: %s by %s (ID: %d)", b.Title, b.Author, b.ID))
	return b, nil
}

func (s *service) Update(ctx context.Context, id int64, req model.BookUpdate) (*model.Book, error) {
	if req.Genre != nil && !req.Genre.Valid() {
		return nil, ErrBadInput
	}
	b, err := s.r.Update(ctx, id, req)
	if err != nil {
		return nil, mapNoRows(err)
	}
	s.bus.Publish(fmt.Sprintf("Book updated: %s by %s (ID: %d)", b.Title, b.Author, b.ID))
	return b, nil
}

func (s *service) Delete(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.r.Delete(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	s.bus.Publish(fmt.Sprintf("Book deleted: %s by %s (ID: %d)", b.Title, b.Author, b.ID))
	return b, nil
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
