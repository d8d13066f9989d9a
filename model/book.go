package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

type Genre string

const (
	GenreMystery        Genre = "Mystery"
	GenreFantasy        Genre = "Fantasy"
	GenreFiction        Genre = "Fiction"
	GenreRomance        Genre = "Romance"
	GenreAdventure      Genre = "Adventure"
	GenreHorror         Genre = "Horror"
	GenreScienceFiction Genre = "Science Fiction"
	GenreClassic        Genre = "Classic"
)

func (g Genre) Valid() bool {
	switch g {
	case GenreMystery, GenreFantasy, GenreFiction, GenreRomance,
		GenreAdventure, GenreHorror, GenreScienceFiction, GenreClassic:
		return true
	}
	return false
}

// Date is a calendar date without a time component. It marshals as
// "2006-01-02" and maps to a SQL date column.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %q", s)
	}
	t, err := time.Parse(dateLayout, s[1:len(s)-1])
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	case []byte:
		return d.Scan(string(v))
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

type Book struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	PublishedDate Date    `json:"published_date"`
	Summary       *string `json:"summary"`
	Genre         *Genre  `json:"genre"`
}

// BookCreate represents the create-book payload
// swagger:model BookCreate
type BookCreate struct {
	Title         string  `json:"title" validate:"required,min=1,max=255"`
	Author        string  `json:"author" validate:"required,min=1,max=255"`
	PublishedDate Date    `json:"published_date" validate:"required"`
	Summary       *string `json:"summary" validate:"omitempty,max=1000"`
	Genre         *Genre  `json:"genre" validate:"omitempty,genre"`
}

// BookUpdate is a partial update: nil fields keep the stored value.
// swagger:model BookUpdate
type BookUpdate struct {
	Title         *string `json:"title" validate:"omitempty,min=1,max=255"`
	Author        *string `json:"author" validate:"omitempty,min=1,max=255"`
	PublishedDate *Date   `json:"published_date"`
	Summary       *string `json:"summary" validate:"omitempty,max=1000"`
	Genre         *Genre  `json:"genre" validate:"omitempty,genre"`
}

// Apply merges the fields present in the update into b.
func (u BookUpdate) Apply(b *Book) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.PublishedDate != nil {
		b.PublishedDate = *u.PublishedDate
	}
	if u.Summary != nil {
		b.Summary = u.Summary
	}
	if u.Genre != nil {
		b.Genre = u.Genre
	}
}
