package entity

// MarketplaceStats is the headline summary shown on the landing page
type MarketplaceStats struct {
	ActiveModels    int    `json:"activeModels"`
	TotalInferences int64  `json:"totalInferences"`
	APTDistributed  string `json:"aptDistributed"`
}
