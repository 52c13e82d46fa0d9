package models

// Branch is a fixed company office usable as origin or pickup point.
type Branch struct {
	ID         int64  `json:"id"`
	Name       string `json:"nombre"`
	Address    string `json:"direccion"`
	City       string `json:"ciudad"`
	Province   string `json:"provincia"`
	PostalCode string `json:"codigo_postal"`
	Phone      string `json:"telefono"`
}

// branchDirectory is the company's fixed two-branch network. The wizard's
// branch-pickup option references these by ID.
var branchDirectory = []Branch{
	{
		ID:         1,
		Name:       "Casa Central San Rafael",
		Address:    "Av. Hipólito Yrigoyen 1540",
		City:       "San Rafael",
		Province:   "Mendoza",
		PostalCode: "5600",
		Phone:      "2604421550",
	},
	{
		ID:         2,
		Name:       "Sucursal Buenos Aires",
		Address:    "Av. Warnes 2340",
		City:       "CABA",
		Province:   "Buenos Aires",
		PostalCode: "1417",
		Phone:      "1145824400",
	},
}

// Branches returns the fixed branch directory.
func Branches() []Branch {
	out := make([]Branch, len(branchDirectory))
	copy(out, branchDirectory)
	return out
}

// FindBranch looks a branch up by ID; nil when unknown.
func FindBranch(id int64) *Branch {
	for i := range branchDirectory {
		if branchDirectory[i].ID == id {
			b := branchDirectory[i]
			return &b
		}
	}
	return nil
}
