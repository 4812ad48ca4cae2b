package model

// WordCategory groups word pairs for settings filtering
type WordCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WordPair is one (normal word, imposter variants) entry in the word bank
type WordPair struct {
	Category  string   `json:"category,omitempty"`
	Normie    string   `json:"normie"`
	Imposters []string `json:"imposters"`
}

// WordBank is the full static word supply
type WordBank struct {
	Categories []WordCategory `json:"categories"`
	Pairs      []WordPair     `json:"pairs"`
}
