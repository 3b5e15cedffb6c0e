package dto

// StatisticsDay is the number of articles published on one calendar day.
type StatisticsDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Statistics struct {
	Days []StatisticsDay `json:"statistics"`
}
