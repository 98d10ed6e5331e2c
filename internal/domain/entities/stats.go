package entities

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	Users        int64                      `json:"users"`
	BannedUsers  int64                      `json:"bannedUsers"`
	Jobs         map[ModerationStatus]int64 `json:"jobs"`
	Investors    map[ModerationStatus]int64 `json:"investors"`
	Applications int64                      `json:"applications"`
	Startups     int64                      `json:"startups"`
}
