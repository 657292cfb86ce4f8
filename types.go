package cufinder

import "encoding/json"

// BaseResponse holds the fields shared by every response.
type BaseResponse struct {
	Query           string          `json:"query,omitempty"`
	CreditCount     int             `json:"credit_count,omitempty"`
	MetaData        json.RawMessage `json:"meta_data,omitempty"`
	ConfidenceLevel int             `json:"confidence_level,omitempty"`
}

// CreditsUsed returns the credits charged for the call.
func (b *BaseResponse) CreditsUsed() int {
	return b.CreditCount
}

// Company is a company record.
type Company struct {
	Name         string          `json:"name,omitempty"`
	Domain       string          `json:"domain,omitempty"`
	LinkedInURL  string          `json:"linkedin_url,omitempty"`
	Industry     string          `json:"industry,omitempty"`
	Size         string          `json:"size,omitempty"`
	Location     string          `json:"location,omitempty"`
	Description  string          `json:"description,omitempty"`
	Founded      int             `json:"founded,omitempty"`
	Revenue      string          `json:"revenue,omitempty"`
	Employees    json.RawMessage `json:"employees,omitempty"`
	Website      string          `json:"website,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Email        string          `json:"email,omitempty"`
	SocialMedia  json.RawMessage `json:"social_media,omitempty"`
	Technologies []string        `json:"technologies,omitempty"`
	Subsidiaries []string        `json:"subsidiaries,omitempty"`
	Headquarters string          `json:"headquarters,omitempty"`
	Country      string          `json:"country,omitempty"`
	State        string          `json:"state,omitempty"`
	City         string          `json:"city,omitempty"`
	ZipCode      string          `json:"zip_code,omitempty"`
	Address      string          `json:"address,omitempty"`
}

// Person is a person record.
type Person struct {
	FirstName     string            `json:"first_name,omitempty"`
	LastName      string            `json:"last_name,omitempty"`
	FullName      string            `json:"full_name,omitempty"`
	Email         string            `json:"email,omitempty"`
	Phone         string            `json:"phone,omitempty"`
	LinkedInURL   string            `json:"linkedin_url,omitempty"`
	JobTitle      string            `json:"job_title,omitempty"`
	Company       string            `json:"company,omitempty"`
	CompanyDomain string            `json:"company_domain,omitempty"`
	Location      string            `json:"location,omitempty"`
	Country       string            `json:"country,omitempty"`
	State         string            `json:"state,omitempty"`
	City          string            `json:"city,omitempty"`
	Bio           string            `json:"bio,omitempty"`
	Experience    []json.RawMessage `json:"experience,omitempty"`
	Education     []json.RawMessage `json:"education,omitempty"`
	Skills        []string          `json:"skills,omitempty"`
	Languages     []string          `json:"languages,omitempty"`
	SocialMedia   json.RawMessage   `json:"social_media,omitempty"`
}

// CUFResponse is returned by [Client.CUF].
type CUFResponse struct {
	BaseResponse
	Domain string `json:"domain"`
}

// LCUFResponse is returned by [Client.LCUF].
type LCUFResponse struct {
	BaseResponse
	LinkedInURL string `json:"linkedin_url"`
}

// DTCResponse is returned by [Client.DTC].
type DTCResponse struct {
	BaseResponse
	CompanyName string `json:"company_name"`
}

// DTEResponse is returned by [Client.DTE].
type DTEResponse struct {
	BaseResponse
	Emails []string `json:"emails"`
}

// NTPResponse is returned by [Client.NTP].
type NTPResponse struct {
	BaseResponse
	Phones []string `json:"phones"`
}

// RELResponse is returned by [Client.REL].
type RELResponse struct {
	BaseResponse
	Person  Person  `json:"person"`
	Company Company `json:"company"`
}

// FCLResponse is returned by [Client.FCL].
type FCLResponse struct {
	BaseResponse
	Lookalikes []Company `json:"lookalikes"`
}

// ELFResponse is returned by [Client.ELF]. The fundraising payload is
// passed through unchanged.
type ELFResponse struct {
	BaseResponse
	Fundraising json.RawMessage `json:"fundraising"`
}

// CARResponse is returned by [Client.CAR].
type CARResponse struct {
	BaseResponse
	Revenue json.RawMessage `json:"revenue"`
}

// FCCResponse is returned by [Client.FCC].
type FCCResponse struct {
	BaseResponse
	Subsidiaries []Company `json:"subsidiaries"`
}

// FTSResponse is returned by [Client.FTS].
type FTSResponse struct {
	BaseResponse
	TechStack json.RawMessage `json:"tech_stack"`
}

// EPPResponse is returned by [Client.EPP].
type EPPResponse struct {
	BaseResponse
	Person  Person  `json:"person"`
	Company Company `json:"company"`
}

// FWEResponse is returned by [Client.FWE].
type FWEResponse struct {
	BaseResponse
	Email string `json:"email"`
}

// TEPResponse is returned by [Client.TEP].
type TEPResponse struct {
	BaseResponse
	Person Person `json:"person"`
}

// ENCResponse is returned by [Client.ENC].
type ENCResponse struct {
	BaseResponse
	Company Company `json:"company"`
}

// CECResponse is returned by [Client.CEC].
type CECResponse struct {
	BaseResponse
	Countries    []string `json:"countries"`
	TotalResults int      `json:"total_results"`
}

// CLOResponse is returned by [Client.CLO].
type CLOResponse struct {
	BaseResponse
	Locations []json.RawMessage `json:"locations"`
}

// CSEResponse is returned by [Client.CSE].
type CSEResponse struct {
	BaseResponse
	Companies    []Company `json:"companies"`
	TotalResults int       `json:"total_results"`
	Page         int       `json:"page"`
}

// PSEResponse is returned by [Client.PSE].
type PSEResponse struct {
	BaseResponse
	People       []Person `json:"people"`
	TotalResults int      `json:"total_results"`
	Page         int      `json:"page"`
}

// LBSResponse is returned by [Client.LBS].
type LBSResponse struct {
	BaseResponse
	Businesses   []Company `json:"businesses"`
	TotalResults int       `json:"total_results"`
	Page         int       `json:"page"`
}

// BCDResponse is returned by [Client.BCD].
type BCDResponse struct {
	BaseResponse
	Customers []Company `json:"customers"`
}

// CCPResponse is returned by [Client.CCP].
type CCPResponse struct {
	BaseResponse
	CareersPageURL string `json:"careers_page_url"`
}

// ISCResponse is returned by [Client.ISC].
type ISCResponse struct {
	BaseResponse
	IsSaaS bool `json:"is_saas"`
}
