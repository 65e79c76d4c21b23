// Package memory implementa los repositorios sobre mapas protegidos por un mutex.
// Se usa en tests y con STORE_DRIVER=memory; aplica las mismas restricciones de unicidad
// que los índices de Postgres y MongoDB.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Store agrupa todas las colecciones en memoria bajo un único mutex.
type Store struct {
	mu            sync.RWMutex
	developers    collection[developerRow]
	games         collection[gameRow]
	contractTypes collection[contractTypeRow]
	contracts     collection[contractRow]
	users         collection[userRow]
	purchases     collection[purchaseRow]
	wishlist      collection[wishlistRow]
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{
		developers:    newCollection[developerRow](),
		games:         newCollection[gameRow](),
		contractTypes: newCollection[contractTypeRow](),
		contracts:     newCollection[contractRow](),
		users:         newCollection[userRow](),
		purchases:     newCollection[purchaseRow](),
		wishlist:      newCollection[wishlistRow](),
	}
}

// collection conserva el orden de inserción para que el paginado sea estable en tests.
type collection[T any] struct {
	items map[string]T
	order []string
}

func newCollection[T any]() collection[T] {
	return collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *collection[T]) put(id string, v T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) delete(id string) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// filter devuelve, en orden de inserción, los elementos que cumplen keep.
func (c *collection[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		v := c.items[id]
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (c *collection[T]) count(keep func(T) bool) int64 {
	var n int64
	for _, v := range c.items {
		if keep(v) {
			n++
		}
	}
	return n
}

// sorted ordena list de forma estable con less.
func sorted[T any](list []T, less func(a, b T) bool) []T {
	sort.SliceStable(list, func(i, j int) bool { return less(list[i], list[j]) })
	return list
}

// ascending orden por clave de texto; empate por ID.
func ascending[T any](key, id func(T) string) func(a, b T) bool {
	return func(a, b T) bool {
		if ka, kb := key(a), key(b); ka != kb {
			return ka < kb
		}
		return id(a) < id(b)
	}
}

// newestFirst orden por fecha descendente; empate por ID descendente.
func newestFirst[T any](at func(T) time.Time, id func(T) string) func(a, b T) bool {
	return func(a, b T) bool {
		if ta, tb := at(a), at(b); !ta.Equal(tb) {
			return ta.After(tb)
		}
		return id(a) > id(b)
	}
}

// window aplica skip/limit sobre una lista ya filtrada.
func window[T any](list []T, page repository.Page) []T {
	if page.Skip >= len(list) {
		return []T{}
	}
	end := len(list)
	if page.Limit > 0 && page.Skip+page.Limit < end {
		end = page.Skip + page.Limit
	}
	return list[page.Skip:end]
}

var folder = cases.Fold()

// foldKey clave de comparación sin distinción de mayúsculas.
func foldKey(s string) string {
	return folder.String(strings.TrimSpace(s))
}
