package mem

import (
	"sync"

	"statserver/internal/domain"
	"statserver/internal/normalize"
)

// Cache keeps player records keyed by normalized name for fast bot
// lookups. Any write to storage must invalidate it.
type Cache struct {
	mu      sync.RWMutex
	valid   bool
	players map[string][]domain.Player
}

func New() *Cache {
	return &Cache{
		players: make(map[string][]domain.Player),
	}
}

func (c *Cache) Update(players []domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = make(map[string][]domain.Player)
	for i := range players {
		name := normalize.Name(players[i].Name)
		c.players[name] = append(c.players[name], players[i])
	}
	c.valid = true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid = false
}

func (c *Cache) Valid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.valid
}

// GetByName returns all seasons stored for a player name.
func (c *Cache) GetByName(name string) ([]domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return nil, false
	}
	players, ok := c.players[normalize.Name(name)]
	if !ok {
		return nil, false
	}
	return players, true
}
