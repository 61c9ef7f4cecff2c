package cache

import (
	"sync"

	"github.com/l6131a-ai/LLM/internal/models"
)

type key struct {
	text     string
	language string
}

// Cache memoizes finished translations so resubmitting the same text and
// language skips the provider round-trip. Unbounded: a single page session
// produces too few distinct requests to need eviction.
type Cache struct {
	mu      sync.Mutex
	results map[key]models.TranslationResult
}

func NewCache() *Cache {
	return &Cache{
		results: make(map[key]models.TranslationResult),
	}
}

func (c *Cache) SetResult(text, language string, result models.TranslationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[key{text: text, language: language}] = result
}

func (c *Cache) Result(text, language string) (models.TranslationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result, exists := c.results[key{text: text, language: language}]
	return result, exists
}

func (c *Cache) DeleteResult(text, language string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.results, key{text: text, language: language})
}
