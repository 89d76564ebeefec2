package dto

// HealthResponse reports process health and, for readiness, each dependency check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	CheckedAt string            `json:"checked_at"`
}
