package entities

import "strings"

// ProjectInfo is the job metadata printed on exports and stored with templates.
type ProjectInfo struct {
	Contractor string `json:"contractor"`
	Address    string `json:"address"`
	Date       string `json:"date"`
}

func (p ProjectInfo) IsZero() bool {
	return strings.TrimSpace(p.Contractor) == "" &&
		strings.TrimSpace(p.Address) == "" &&
		strings.TrimSpace(p.Date) == ""
}
