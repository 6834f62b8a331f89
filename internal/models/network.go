package models

// Network node types
const (
	NodeTypeTarget   = "target"
	NodeTypeNeighbor = "neighbor"
)

const LinkTypeOwnership = "Ownership"

// Network is the ego graph around a single company.
type Network struct {
	Nodes []NetworkNode `json:"nodes"`
	Links []NetworkLink `json:"links"`
}

type NetworkNode struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Type  string    `json:"type"`
	Risk  RiskLevel `json:"risk"`
}

// NetworkLink is either a transaction or an ownership edge. Ownership links
// carry the percentage in Amount, e.g. "45.2%".
type NetworkLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Amount string `json:"amount"`
	Type   string `json:"type"`
	Date   string `json:"date"`
}
