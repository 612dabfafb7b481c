package fsmeta

import (
	"os/user"
	"strconv"
	"sync"
)

// Probe answers metadata queries for the listing engine. It owns the
// id-to-name cache; everything else on it is stateless.
//
// The cache is mutex-guarded so lookups stay safe if callers ever probe
// from more than one goroutine. Entries are never evicted: the id space
// on a machine is small and names do not churn within a session.
type Probe struct {
	mu     sync.Mutex
	users  map[uint32]string
	groups map[uint32]string
}

// NewProbe creates a Probe with empty identity caches.
func NewProbe() *Probe {
	return &Probe{
		users:  make(map[uint32]string),
		groups: make(map[uint32]string),
	}
}

// UserName resolves a uid to a user name via the OS identity database.
// Unresolvable ids render as their decimal string and are not cached,
// so an id added to the database later still resolves.
func (p *Probe) UserName(uid uint32) string {
	return p.cached(p.users, uid, func(id string) (string, error) {
		u, err := user.LookupId(id)
		if err != nil {
			return "", err
		}
		return u.Username, nil
	})
}

// GroupName resolves a gid to a group name, falling back to the decimal
// string like UserName does.
func (p *Probe) GroupName(gid uint32) string {
	return p.cached(p.groups, gid, func(id string) (string, error) {
		g, err := user.LookupGroupId(id)
		if err != nil {
			return "", err
		}
		return g.Name, nil
	})
}

func (p *Probe) cached(cache map[uint32]string, id uint32, lookup func(string) (string, error)) string {
	p.mu.Lock()
	name, ok := cache[id]
	p.mu.Unlock()
	if ok {
		return name
	}

	dec := strconv.FormatUint(uint64(id), 10)
	name, err := lookup(dec)
	if err != nil || name == "" {
		return dec
	}

	p.mu.Lock()
	cache[id] = name
	p.mu.Unlock()
	return name
}
