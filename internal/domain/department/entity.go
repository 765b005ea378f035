package department

// Department is a catalog entry. The catalog is fixed and read-only: there is
// no create/edit/delete path, and Employee.Department references it by name
// only, without referential integrity.
type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
