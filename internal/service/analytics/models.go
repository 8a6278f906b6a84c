package analytics

// Overview is the headline revenue and customer block.
type Overview struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	CompletedRevenue  float64 `json:"completedRevenue"`
	TotalBookings     int     `json:"totalBookings"`
	CompletedBookings int     `json:"completedBookings"`
	UniqueCustomers   int     `json:"uniqueCustomers"`
	RetentionRate     float64 `json:"retentionRate"` // percentage, one decimal
}

// MonthRevenue is one bucket of the trailing monthly window.
type MonthRevenue struct {
	Month   string  `json:"month"` // "Jan", "Feb", ...
	Revenue float64 `json:"revenue"`
}

// ServiceStat is the per-service booking distribution.
type ServiceStat struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// StaffPerformance is the per-staff completed-jobs view.
type StaffPerformance struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	JobsCompleted int     `json:"jobsCompleted"`
	Revenue       float64 `json:"revenue"`
}

// DayOfWeekCount is one bucket of the weekday demand histogram.
type DayOfWeekCount struct {
	Day   string `json:"day"` // "Sun" .. "Sat"
	Count int    `json:"count"`
}

// DemandTrends groups the demand histograms.
type DemandTrends struct {
	ByDayOfWeek []DayOfWeekCount `json:"byDayOfWeek"`
}

// Report is the full analytics response.
type Report struct {
	Overview         Overview           `json:"overview"`
	MonthlyRevenue   []MonthRevenue     `json:"monthlyRevenue"`
	ServiceStats     []ServiceStat      `json:"serviceStats"`
	StaffPerformance []StaffPerformance `json:"staffPerformance"`
	DemandTrends     DemandTrends       `json:"demandTrends"`
}
