package post

import (
	"fmt"
	"net/http"
	"strconv"
)

// Post is a blog post record as the remote api defines it. Its schema is
// owned by the server; the client only carries it.
type Post map[string]any

// ID returns the numeric "id" field, if the record has one.
func (p Post) ID() (int, bool) {
	switch v := p["id"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		id, err := strconv.Atoi(v)
		return id, err == nil
	default:
		return 0, false
	}
}

func (p Post) String() string {
	if id, ok := p.ID(); ok {
		return fmt.Sprintf("post %d: %v", id, p["title"])
	}
	return fmt.Sprintf("post: %v", p["title"])
}

type Config struct {
	BaseURL string
	// Headers are sent with write requests (create, update, remove)
	Headers http.Header
}

func DefaultHeaders() http.Header {
	return http.Header{
		"Content-Type": []string{"application/json"},
	}
}

func NewConfig(baseURL string) Config {
	return Config{
		BaseURL: baseURL,
		Headers: DefaultHeaders(),
	}
}
