package repository

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/models"
)

// Record is anything stored in a global collection.
type Record interface {
	GetID() string
}

// Collection is an array of records under one top-level key, newest first.
type Collection[T Record] struct {
	repo *Repository
	key  string
}

func NewCollection[T Record](repo *Repository, key string) *Collection[T] {
	return &Collection[T]{repo: repo, key: key}
}

func NewContests(repo *Repository) *Collection[models.Contest] {
	return NewCollection[models.Contest](repo, KeyContests)
}

func NewSubmissions(repo *Repository) *Collection[models.ContestSubmission] {
	return NewCollection[models.ContestSubmission](repo, KeySubmissions)
}

func NewPosts(repo *Repository) *Collection[models.CommunityPost] {
	return NewCollection[models.CommunityPost](repo, KeyPosts)
}

// Key names the top-level key backing the collection.
func (c *Collection[T]) Key() string { return c.key }

// List returns every record; never nil.
func (c *Collection[T]) List() []T {
	items := load[[]T](c.repo, c.key)
	if items == nil {
		items = []T{}
	}
	return items
}

func (c *Collection[T]) Get(id string) (T, bool) {
	for _, item := range c.List() {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Create prepends rec.
func (c *Collection[T]) Create(rec T) ([]T, error) {
	return mutate(c.repo, c.key, func(items *[]T) error {
		*items = append([]T{rec}, *items...)
		return nil
	})
}

// Update replaces the record sharing rec's id. ok is false when no record
// matched and nothing was written.
func (c *Collection[T]) Update(rec T) (ok bool, err error) {
	_, err = mutate(c.repo, c.key, func(items *[]T) error {
		for i := range *items {
			if (*items)[i].GetID() == rec.GetID() {
				(*items)[i] = rec
				ok = true
				return nil
			}
		}
		return errNoMatch
	})
	if errors.Is(err, errNoMatch) {
		return false, nil
	}
	return ok, err
}

// Modify applies fn to the record with id under the collection lock.
func (c *Collection[T]) Modify(id string, fn func(*T) error) (T, bool, error) {
	var (
		out   T
		found bool
	)
	_, err := mutate(c.repo, c.key, func(items *[]T) error {
		for i := range *items {
			if (*items)[i].GetID() == id {
				if err := fn(&(*items)[i]); err != nil {
					return err
				}
				out = (*items)[i]
				found = true
				return nil
			}
		}
		return errNoMatch
	})
	if errors.Is(err, errNoMatch) {
		return out, false, nil
	}
	return out, found, err
}

// Remove filters out id and returns the resulting list.
func (c *Collection[T]) Remove(id string) ([]T, error) {
	return c.RemoveWhere(func(item T) bool { return item.GetID() == id })
}

// RemoveWhere filters out every record matching pred.
func (c *Collection[T]) RemoveWhere(pred func(T) bool) ([]T, error) {
	return c.Rewrite(func(items []T) []T {
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if !pred(item) {
				kept = append(kept, item)
			}
		}
		return kept
	})
}

// Rewrite replaces the whole array with fn's result under the collection
// lock.
func (c *Collection[T]) Rewrite(fn func([]T) []T) ([]T, error) {
	items, err := mutate(c.repo, c.key, func(items *[]T) error {
		*items = fn(*items)
		return nil
	})
	if items == nil {
		items = []T{}
	}
	return items, err
}
