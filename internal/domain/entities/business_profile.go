package entities

// BusinessProfile holds the contact details of the business that owns jobs
type BusinessProfile struct {
	UserID          string `json:"userId"`
	BusinessName    string `json:"businessName"`
	BusinessEmail   string `json:"businessEmail"`
	BusinessPhone   string `json:"businessPhone"`
	BusinessAddress string `json:"businessAddress"`
}
