package fakeapi

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/2beens/postclient/internal/post"
)

var ErrPostNotFound = errors.New("post not found")

// Store keeps posts in memory, keyed by id.
type Store struct {
	mutex  sync.Mutex
	posts  map[int]post.Post
	nextID int
}

func NewStore() *Store {
	return &Store{
		posts:  make(map[int]post.Post),
		nextID: 1,
	}
}

// NewSeededStore returns a store holding count posts, ids 1..count.
func NewSeededStore(count int) *Store {
	s := NewStore()
	for i := 1; i <= count; i++ {
		s.Add(post.Post{
			"userId": (i-1)/10 + 1,
			"title":  fmt.Sprintf("post %d title", i),
			"body":   fmt.Sprintf("post %d body", i),
		})
	}
	return s
}

func (s *Store) All() []post.Post {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	ids := make([]int, 0, len(s.posts))
	for id := range s.posts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	posts := make([]post.Post, 0, len(ids))
	for _, id := range ids {
		posts = append(posts, copyPost(s.posts[id]))
	}
	return posts
}

func (s *Store) Get(id int) (post.Post, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, ErrPostNotFound
	}
	return copyPost(p), nil
}

// Add stores p under a fresh id and returns the stored record.
func (s *Store) Add(p post.Post) post.Post {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored := copyPost(p)
	stored["id"] = s.nextID
	s.posts[s.nextID] = stored
	s.nextID++

	return copyPost(stored)
}

// Update replaces the post with the given id; the id field always wins
// over whatever the body carries.
func (s *Store) Update(id int, p post.Post) (post.Post, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.posts[id]; !ok {
		return nil, ErrPostNotFound
	}

	stored := copyPost(p)
	stored["id"] = id
	s.posts[id] = stored

	return copyPost(stored), nil
}

func (s *Store) Delete(id int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.posts[id]; !ok {
		return ErrPostNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *Store) Count() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.posts)
}

func copyPost(p post.Post) post.Post {
	c := make(post.Post, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}
