package entity

// Roster 一局里的玩家表，保持加入顺序。
type Roster struct {
	byID  map[PlayerID]*Player
	order []PlayerID
	limit int
}

// NewRoster limit <= 0 表示不限人数。
func NewRoster(limit int) *Roster {
	return &Roster{byID: make(map[PlayerID]*Player), limit: limit}
}

// Join 分配下一个玩家 ID（从 1 开始）。
func (r *Roster) Join(name string, cash int) (*Player, error) {
	if r.limit > 0 && len(r.order) >= r.limit {
		return nil, ErrRosterFull.WithData("limit", r.limit)
	}
	id := PlayerID(len(r.order) + 1)
	p := NewPlayer(id, name, cash)
	r.byID[id] = p
	r.order = append(r.order, id)
	return p, nil
}

func (r *Roster) Player(id PlayerID) (*Player, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// MustPlayer 找不到时返回 ErrPlayerNotFound。
func (r *Roster) MustPlayer(id PlayerID) (*Player, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return nil, ErrPlayerNotFound.WithData("player_id", int(id))
}

func (r *Roster) All() []*Player {
	out := make([]*Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *Roster) Len() int {
	return len(r.order)
}
