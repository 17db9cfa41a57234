package games

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Index maps a string key to games, remembering the order keys were first added.
// It serializes as a plain JSON object whose members follow that order.
type Index struct {
	keys  []string
	games map[string][]Game
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{games: make(map[string][]Game)}
}

// Append adds a game to the list stored under key.
func (i *Index) Append(key string, game Game) {
	if i.games == nil {
		i.games = make(map[string][]Game)
	}
	if _, ok := i.games[key]; !ok {
		i.keys = append(i.keys, key)
	}
	i.games[key] = append(i.games[key], game)
}

// Keys returns keys in insertion order.
func (i *Index) Keys() []string {
	if i == nil {
		return nil
	}
	out := make([]string, len(i.keys))
	copy(out, i.keys)
	return out
}

// Get returns the games stored under key.
func (i *Index) Get(key string) ([]Game, bool) {
	if i == nil {
		return nil, false
	}
	g, ok := i.games[key]
	return g, ok
}

// Len returns the number of keys.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.keys)
}

// MarshalJSON writes the index as an object with members in insertion order.
func (i *Index) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if i != nil {
		for n, key := range i.keys {
			if n > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			v, err := json.Marshal(i.games[key])
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object, keeping member order as key order.
func (i *Index) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("games index: expected object, got %v", tok)
	}

	i.keys = nil
	i.games = make(map[string][]Game)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("games index: expected key, got %v", tok)
		}
		var list []Game
		if err := dec.Decode(&list); err != nil {
			return fmt.Errorf("games index: key %q: %w", key, err)
		}
		if _, seen := i.games[key]; !seen {
			i.keys = append(i.keys, key)
		}
		i.games[key] = list
	}
	_, err = dec.Token()
	return err
}
