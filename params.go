package cufinder

// Parameter structs declare their wire names once through json tags; the
// same tags drive form encoding and validation error field names. String
// fields tagged required must be non-empty. Search filters are omitted from
// the request when unset.

// CUFParams are the parameters for [Client.CUF].
type CUFParams struct {
	CompanyName string `json:"company_name" validate:"required"`
	// CountryCode is a two-letter country code, e.g. "US".
	CountryCode string `json:"country_code" validate:"required"`
}

// LCUFParams are the parameters for [Client.LCUF].
type LCUFParams struct {
	CompanyName string `json:"company_name" validate:"required"`
}

// DTCParams are the parameters for [Client.DTC].
type DTCParams struct {
	CompanyWebsite string `json:"company_website" validate:"required"`
}

// DTEParams are the parameters for [Client.DTE].
type DTEParams struct {
	CompanyWebsite string `json:"company_website" validate:"required"`
}

// NTPParams are the parameters for [Client.NTP].
type NTPParams struct {
	CompanyName string `json:"company_name" validate:"required"`
}

// RELParams are the parameters for [Client.REL].
type RELParams struct {
	Email string `json:"email" validate:"required"`
}

// QueryParams carry a free-text company query. They are shared by FCL, ELF,
// CAR, FCC, FTS, ENC, CEC and CLO.
type QueryParams struct {
	Query string `json:"query" validate:"required"`
}

// EPPParams are the parameters for [Client.EPP].
type EPPParams struct {
	LinkedInURL string `json:"linkedin_url" validate:"required"`
}

// FWEParams are the parameters for [Client.FWE].
type FWEParams struct {
	LinkedInURL string `json:"linkedin_url" validate:"required"`
}

// TEPParams are the parameters for [Client.TEP].
type TEPParams struct {
	FullName string `json:"full_name" validate:"required"`
	Company  string `json:"company" validate:"required"`
}

// URLParams carry a website URL. They are shared by BCD, CCP and ISC.
type URLParams struct {
	URL string `json:"url" validate:"required"`
}

// CSEParams are the company search filters for [Client.CSE].
type CSEParams struct {
	Name              string   `json:"name,omitempty"`
	Country           string   `json:"country,omitempty"`
	State             string   `json:"state,omitempty"`
	City              string   `json:"city,omitempty"`
	FollowersCountMin *int     `json:"followers_count_min,omitempty"`
	FollowersCountMax *int     `json:"followers_count_max,omitempty"`
	Industry          string   `json:"industry,omitempty"`
	EmployeeSize      string   `json:"employee_size,omitempty"`
	FoundedAfterYear  *int     `json:"founded_after_year,omitempty"`
	FoundedBeforeYear *int     `json:"founded_before_year,omitempty"`
	FundingAmountMax  *int     `json:"funding_amount_max,omitempty"`
	FundingAmountMin  *int     `json:"funding_amount_min,omitempty"`
	ProductsServices  []string `json:"products_services,omitempty"`
	IsSchool          *bool    `json:"is_school,omitempty"`
	AnnualRevenueMin  *int     `json:"annual_revenue_min,omitempty"`
	AnnualRevenueMax  *int     `json:"annual_revenue_max,omitempty"`
	Page              *int     `json:"page,omitempty"`
}

// PSEParams are the person search filters for [Client.PSE].
type PSEParams struct {
	FullName                string   `json:"full_name,omitempty"`
	Country                 string   `json:"country,omitempty"`
	State                   string   `json:"state,omitempty"`
	City                    string   `json:"city,omitempty"`
	JobTitleRole            string   `json:"job_title_role,omitempty"`
	JobTitleLevel           string   `json:"job_title_level,omitempty"`
	CompanyCountry          string   `json:"company_country,omitempty"`
	CompanyState            string   `json:"company_state,omitempty"`
	CompanyCity             string   `json:"company_city,omitempty"`
	CompanyName             string   `json:"company_name,omitempty"`
	CompanyLinkedInURL      string   `json:"company_linkedin_url,omitempty"`
	CompanyIndustry         string   `json:"company_industry,omitempty"`
	CompanyEmployeeSize     string   `json:"company_employee_size,omitempty"`
	CompanyProductsServices []string `json:"company_products_services,omitempty"`
	CompanyAnnualRevenueMin *int     `json:"company_annual_revenue_min,omitempty"`
	CompanyAnnualRevenueMax *int     `json:"company_annual_revenue_max,omitempty"`
	Page                    *int     `json:"page,omitempty"`
}

// LBSParams are the local business search filters for [Client.LBS].
type LBSParams struct {
	Name     string `json:"name,omitempty"`
	Country  string `json:"country,omitempty"`
	State    string `json:"state,omitempty"`
	City     string `json:"city,omitempty"`
	Industry string `json:"industry,omitempty"`
	Page     *int   `json:"page,omitempty"`
}

// Int returns a pointer to v, for optional numeric filters.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for optional boolean filters.
func Bool(v bool) *bool { return &v }
