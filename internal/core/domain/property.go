package domain

// Property is a rental unit owned by a host, optionally assigned a cleaner.
// An empty CleanerID means unassigned.
type Property struct {
	ID         string `json:"id"`
	HostID     string `json:"host_id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	CleanerID  string `json:"cleaner_id,omitempty"`
	AccessCode string `json:"access_code,omitempty"`
	Notes      string `json:"notes,omitempty"`
}
