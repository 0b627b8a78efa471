package dto

type DashboardResponse struct {
	UserCount     int64  `json:"userCount"`
	MedicineCount int64  `json:"medicineCount"`
	SearchCount   int    `json:"searchCount"`
	TimeSaved     string `json:"timeSaved"`
}

type AutocompleteResponse struct {
	Potency []string `json:"potency"`
	Brand   []string `json:"brand"`
	Size    []string `json:"size"`
}

type UploadResponse struct {
	PhotoURL string `json:"photoUrl"`
}
