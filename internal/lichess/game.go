package lichess

import "strconv"

// Game is a single game as returned by the lichess game export endpoint
// with Accept: application/json.
type Game struct {
	ID         string   `json:"id"`
	Rated      bool     `json:"rated"`
	Variant    string   `json:"variant"`
	Speed      string   `json:"speed"`
	Perf       string   `json:"perf"`
	CreatedAt  int64    `json:"createdAt"`
	LastMoveAt int64    `json:"lastMoveAt"`
	Status     string   `json:"status"`
	Source     string   `json:"source,omitempty"`
	Players    Players  `json:"players"`
	Winner     string   `json:"winner,omitempty"`
	Opening    *Opening `json:"opening,omitempty"`
	Moves      string   `json:"moves,omitempty"`
	Clock      *Clock   `json:"clock,omitempty"`
	Clocks     []int    `json:"clocks,omitempty"`
	PGN        string   `json:"pgn,omitempty"`
}

type Players struct {
	White Player `json:"white"`
	Black Player `json:"black"`
}

// Player is one side of a game. User is nil for anonymous and AI players.
type Player struct {
	User       *User            `json:"user,omitempty"`
	Rating     int              `json:"rating,omitempty"`
	RatingDiff int              `json:"ratingDiff,omitempty"`
	AILevel    int              `json:"aiLevel,omitempty"`
	Analysis   *AnalysisSummary `json:"analysis,omitempty"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
}

// AnalysisSummary is the per-player accuracy block present when the game was analysed.
type AnalysisSummary struct {
	Inaccuracy int `json:"inaccuracy"`
	Mistake    int `json:"mistake"`
	Blunder    int `json:"blunder"`
	ACPL       int `json:"acpl"`
	Accuracy   int `json:"accuracy,omitempty"`
}

type Opening struct {
	ECO  string `json:"eco"`
	Name string `json:"name"`
	Ply  int    `json:"ply"`
}

type Clock struct {
	Initial   int `json:"initial"`
	Increment int `json:"increment"`
	TotalTime int `json:"totalTime"`
}

// Name returns the player's display name.
func (p Player) Name() string {
	switch {
	case p.User != nil:
		return p.User.Name
	case p.AILevel > 0:
		return "Stockfish level " + strconv.Itoa(p.AILevel)
	default:
		return "Anonymous"
	}
}

// Clone returns a deep copy of g.
func (g Game) Clone() *Game {
	out := g
	out.Players.White = g.Players.White.clone()
	out.Players.Black = g.Players.Black.clone()
	if g.Opening != nil {
		o := *g.Opening
		out.Opening = &o
	}
	if g.Clock != nil {
		c := *g.Clock
		out.Clock = &c
	}
	if g.Clocks != nil {
		out.Clocks = append([]int(nil), g.Clocks...)
	}
	return &out
}

func (p Player) clone() Player {
	out := p
	if p.User != nil {
		u := *p.User
		out.User = &u
	}
	if p.Analysis != nil {
		a := *p.Analysis
		out.Analysis = &a
	}
	return out
}
