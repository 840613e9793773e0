package models

// Region is one selectable entry in the region directory.
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DefaultRegions is the built-in directory served when the upstream region
// listing is unavailable.
var DefaultRegions = []Region{
	{Code: "KR", Name: "South Korea"},
	{Code: "US", Name: "United States"},
	{Code: "JP", Name: "Japan"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "BR", Name: "Brazil"},
	{Code: "IN", Name: "India"},
	{Code: "DE", Name: "Germany"},
	{Code: "FR", Name: "France"},
	{Code: "RU", Name: "Russia"},
	{Code: "CA", Name: "Canada"},
	{Code: "AU", Name: "Australia"},
	{Code: "MX", Name: "Mexico"},
	{Code: "ES", Name: "Spain"},
	{Code: "IT", Name: "Italy"},
	{Code: "ID", Name: "Indonesia"},
	{Code: "TR", Name: "Turkey"},
	{Code: "NL", Name: "Netherlands"},
	{Code: "SA", Name: "Saudi Arabia"},
	{Code: "TH", Name: "Thailand"},
	{Code: "VN", Name: "Vietnam"},
}
