package response

type PartnerAssignment struct {
	PartnerID      int64  `json:"partner_id" db:"partner_id"`
	Name           string `json:"name" db:"name"`
	ActiveWorkload int    `json:"active_workload" db:"active_workload"`
}
