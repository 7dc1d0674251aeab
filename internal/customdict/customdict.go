package customdict

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

const DefaultKey = "custom_dict"

// ErrInvalidWord is returned for words that are empty or contain non-letters.
var ErrInvalidWord = errors.New("customdict: word must be ASCII letters only")

// CustomDict stores extra accepted words in a Redis set. The words are merged
// into the dictionary when it is built.
type CustomDict struct {
	client redis.Cmdable
	key    string
}

// New creates a new CustomDict with the provided Redis client.
func New(client redis.Cmdable) *CustomDict {
	return &CustomDict{client: client, key: DefaultKey}
}

// WithKey returns a copy of cd that uses key for its set.
func (cd *CustomDict) WithKey(key string) *CustomDict {
	return &CustomDict{client: cd.client, key: key}
}

// Normalize lowercases word and checks that it is a valid dictionary entry.
func Normalize(word string) (string, error) {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return "", ErrInvalidWord
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", ErrInvalidWord
		}
	}
	return w, nil
}

// Add inserts a word into the custom dictionary.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	w, err := Normalize(word)
	if err != nil {
		return err
	}
	return cd.client.SAdd(ctx, cd.key, w).Err()
}

// Remove deletes a word from the custom dictionary.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	w, err := Normalize(word)
	if err != nil {
		return err
	}
	return cd.client.SRem(ctx, cd.key, w).Err()
}

// All returns all words stored in the custom dictionary.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	return cd.client.SMembers(ctx, cd.key).Result()
}
