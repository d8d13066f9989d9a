package bookrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"librarymgmt/model"
	"librarymgmt/util/database"
)

type Repo interface {
	List(ctx context.Context, skip, limit int) ([]model.Book, error)
	Get(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, b *model.Book) error
	Update(ctx context.Context, id int64, upd model.BookUpdate) (*model.Book, error)
	Delete(ctx context.Context, id int64) (*model.Book, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

const bookColumns = `id, title, author, published_date, summary, genre`

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	var summary, genre *string
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.PublishedDate, &summary, &genre); err != nil {
		return nil, err
	}
	b.Summary = summary
	if genre != nil {
		g := model.Genre(*genre)
		b.Genre = &g
	}
	return &b, nil
}

func genreParam(g *model.Genre) *string {
	if g == nil {
		return nil
	}
	s := string(*g)
	return &s
}

func (r *repo) List(ctx context.Context, skip, limit int) ([]model.Book, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+bookColumns+`
		FROM books
		ORDER BY id
		OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Book, error) {
	return scanBook(r.db.Pool.QueryRow(ctx, `
		SELECT `+bookColumns+`
		FROM books
		WHERE id=$1`,
		id,
	))
}

func (r *repo) Create(ctx context.Context, b *model.Book) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO books(title, author, published_date, summary, genre)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		b.Title, b.Author, b.PublishedDate, b.Summary, genreParam(b.Genre),
	).Scan(&b.ID)
}

// Update merges the supplied fields into the stored row inside a
// transaction: read the current row, overwrite what the caller set,
// write it back.
func (r *repo) Update(ctx context.Context, id int64, upd model.BookUpdate) (*model.Book, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	b, err := scanBook(tx.QueryRow(ctx, `
		SELECT `+bookColumns+`
		FROM books
		WHERE id=$1
		FOR UPDATE`,
		id,
	))
	if err != nil {
		return nil, err
	}

	upd.Apply(b)

	if _, err := tx.Exec(ctx, `
		UPDATE books
		SET title=$1, author=$2, published_date=$3, summary=$4, genre=$5
		WHERE id=$6`,
		b.Title, b.Author, b.PublishedDate, b.Summary, genreParam(b.Genre), id,
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) Delete(ctx context.Context, id int64) (*model.Book, error) {
	return scanBook(r.db.Pool.QueryRow(ctx, `
		DELETE FROM books
		WHERE id=$1
		RETURNING `+bookColumns,
		id,
	))
}
