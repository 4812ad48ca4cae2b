package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CreateResult:
		fmt.Printf("Lobby created: %s\n", v.LobbyID)
	case JoinResult:
		fmt.Printf("Joined lobby %s\n", v.LobbyID)
		fmt.Printf("Players: %s\n", strings.Join(v.Players, ", "))
	case ViewResult:
		o.printLobby(v.Lobby)
	case SpinResult:
		fmt.Println(v.Result)
	case CategoriesResult:
		for _, c := range v.Categories {
			fmt.Printf("%s\t%s\n", c.ID, c.Name)
		}
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printLobby(l Lobby) {
	fmt.Printf("Lobby:  %s (%s)\n", l.Code, l.Game)
	fmt.Printf("Host:   %s\n", l.Host)
	if l.Phase != "" {
		fmt.Printf("Phase:  %s\n", l.Phase)
	}

	names := make([]string, 0, len(l.Players))
	for _, p := range l.Players {
		name := p.Name
		if p.Role != "" {
			name = fmt.Sprintf("%s [%s: %s]", p.Name, p.Role, p.Word)
		}
		names = append(names, name)
	}
	fmt.Printf("Players: %s\n", strings.Join(names, ", "))

	if l.Me != nil {
		fmt.Printf("You are: %s, your word is %q\n", l.Me.Role, l.Me.Word)
	}
	if l.StartingPlayer != "" {
		fmt.Printf("Starting player: %s\n", l.StartingPlayer)
	}
	if l.TimerEndsAt != nil {
		remaining := time.Until(*l.TimerEndsAt).Round(time.Second)
		if remaining > 0 {
			fmt.Printf("Discussion ends in: %s\n", remaining)
		}
	}
	if len(l.MyVotes) > 0 {
		fmt.Printf("Your votes: %s\n", strings.Join(l.MyVotes, ", "))
	}
	if len(l.VoteResults) > 0 {
		fmt.Println("Vote results:")
		targets := make([]string, 0, len(l.VoteResults))
		for name := range l.VoteResults {
			targets = append(targets, name)
		}
		sort.Slice(targets, func(i, j int) bool {
			if l.VoteResults[targets[i]] != l.VoteResults[targets[j]] {
				return l.VoteResults[targets[i]] > l.VoteResults[targets[j]]
			}
			return targets[i] < targets[j]
		})
		for _, name := range targets {
			fmt.Printf("  %s: %d\n", name, l.VoteResults[name])
		}
	}
	if l.LastResult != "" {
		fmt.Printf("Last spin: %s\n", l.LastResult)
	}
}

// Player mirrors the API's projected player
type Player struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
	Word string `json:"word,omitempty"`
}

// Lobby mirrors the API's projected lobby
type Lobby struct {
	Code           string         `json:"code"`
	Game           string         `json:"game"`
	Host           string         `json:"host"`
	Phase          string         `json:"phase,omitempty"`
	Players        []Player       `json:"players"`
	IsHost         bool           `json:"isHost"`
	Me             *Player        `json:"me,omitempty"`
	StartingPlayer string         `json:"startingPlayer,omitempty"`
	TimerEndsAt    *time.Time     `json:"timerEndsAt,omitempty"`
	MyVotes        []string       `json:"myVotes,omitempty"`
	VoteResults    map[string]int `json:"voteResults,omitempty"`
	LastResult     string         `json:"lastResult,omitempty"`
}

// CreateResult is the lobby creation response
type CreateResult struct {
	Success bool   `json:"success"`
	LobbyID string `json:"lobbyId"`
}

// JoinResult is the join response
type JoinResult struct {
	Success bool     `json:"success"`
	LobbyID string   `json:"lobbyId"`
	Players []string `json:"players"`
}

// ViewResult wraps a lobby projection
type ViewResult struct {
	Success bool  `json:"success"`
	Lobby   Lobby `json:"lobby"`
	IsHost  bool  `json:"isHost"`
}

// SpinResult is the bottle spin response
type SpinResult struct {
	Success bool   `json:"success"`
	Result  string `json:"result"`
}

// CategoriesResult lists word bank categories
type CategoriesResult struct {
	Success    bool `json:"success"`
	Categories []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"categories"`
}

// HealthResult is the health check response
type HealthResult struct {
	Status string `json:"status"`
}
