package model

// Role is the secret role assigned to a player for one imposter round
type Role string

const (
	RoleImposter Role = "Imposter"
	RoleNormie   Role = "Normie"
)

// Player is a lobby member, identified by display name (unique within a
// lobby, not globally). Role and Word are populated only during an active
// imposter round and cleared at the next round's setup.
type Player struct {
	Name string `json:"name"`
	Role Role   `json:"role,omitempty"`
	Word string `json:"word,omitempty"`
}
