package domain

type DashboardStats struct {
	Teams                 int64            `json:"teams"`
	OpenEmergencies       int64            `json:"open_emergencies"`
	UnassignedEmergencies int64            `json:"unassigned_emergencies"`
	Employees             int64            `json:"employees"`
	AlertsBySeverity      map[string]int64 `json:"alerts_by_severity"`
}
