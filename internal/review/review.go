package review

import (
	"strconv"
	"strings"

	"github.com/corentings/chess/v2"
	"github.com/corentings/chess/v2/opening"

	"github.com/vytor/lichessexport/internal/errors"
	"github.com/vytor/lichessexport/internal/lichess"
	"github.com/vytor/lichessexport/internal/pgn"
)

// Summary is a one-line digest of an exported game.
type Summary struct {
	GameID   string
	White    string
	Black    string
	Result   string
	Date     string
	ECO      string
	Opening  string
	Plies    int
	FinalFEN string
}

// Replay rebuilds the game from its PGN, or from the SAN move list when the
// export was made without pgnInJson.
func Replay(g *lichess.Game) (*chess.Game, error) {
	pgnText := g.PGN
	if strings.TrimSpace(pgnText) == "" {
		result := Result(g)
		pgnText = "[Result \"" + result + "\"]\n\n" + MovetextFromSAN(g.Moves, result)
	}

	pgnOpt, err := chess.PGN(strings.NewReader(pgnText))
	if err != nil {
		return nil, errors.NewDecodeError("moves of game "+g.ID, err)
	}
	return chess.NewGame(pgnOpt), nil
}

// Summarize replays g and describes it. When the export carries no opening the
// ECO book is consulted.
func Summarize(g *lichess.Game) (Summary, error) {
	chessGame, err := Replay(g)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		GameID:   g.ID,
		White:    g.Players.White.Name(),
		Black:    g.Players.Black.Name(),
		Result:   Result(g),
		Plies:    len(chessGame.Moves()),
		FinalFEN: chessGame.Position().String(),
	}

	if g.PGN != "" {
		s.Date = pgn.ParseHeaders(g.PGN)["Date"]
	}

	if g.Opening != nil {
		s.ECO = g.Opening.ECO
		s.Opening = g.Opening.Name
	} else {
		book := opening.NewBookECO()
		if found := book.Find(chessGame.Moves()); found != nil {
			s.ECO = found.Code()
			s.Opening = found.Title()
		}
	}
	return s, nil
}

// Result converts the lichess winner/status pair into a PGN result token.
func Result(g *lichess.Game) string {
	switch g.Winner {
	case "white":
		return "1-0"
	case "black":
		return "0-1"
	}
	switch g.Status {
	case "draw", "stalemate":
		return "1/2-1/2"
	default:
		return "*"
	}
}

// MovetextFromSAN numbers a space separated SAN move list, e.g.
// "e4 e5 Nf3" becomes "1. e4 e5 2. Nf3 *".
func MovetextFromSAN(moves, result string) string {
	var sb strings.Builder
	for i, san := range strings.Fields(moves) {
		if i%2 == 0 {
			sb.WriteString(strconv.Itoa(i/2 + 1))
			sb.WriteString(". ")
		}
		sb.WriteString(san)
		sb.WriteString(" ")
	}
	sb.WriteString(result)
	return sb.String()
}

// String renders s as a single line.
func (s Summary) String() string {
	var sb strings.Builder
	sb.WriteString(s.GameID)
	sb.WriteString(": ")
	sb.WriteString(s.White)
	sb.WriteString(" vs ")
	sb.WriteString(s.Black)
	sb.WriteString(" ")
	sb.WriteString(s.Result)
	if s.ECO != "" {
		sb.WriteString(" [" + s.ECO + " " + s.Opening + "]")
	}
	sb.WriteString(" plies=" + strconv.Itoa(s.Plies))
	return sb.String()
}
