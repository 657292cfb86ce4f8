package cufinder

// Operation describes one CUFinder endpoint.
type Operation struct {
	// Code is the short vendor code, e.g. "CUF".
	Code string
	// Path is appended to the base URL.
	Path string
	// Name is a human-readable description.
	Name string
	// Required lists the wire names of mandatory parameters in declared order.
	Required []string
	// Returns lists the response keys that must be present in a successful
	// payload.
	Returns []string
}

// Operation codes.
const (
	CodeCUF  = "CUF"
	CodeLCUF = "LCUF"
	CodeDTC  = "DTC"
	CodeDTE  = "DTE"
	CodeNTP  = "NTP"
	CodeREL  = "REL"
	CodeFCL  = "FCL"
	CodeELF  = "ELF"
	CodeCAR  = "CAR"
	CodeFCC  = "FCC"
	CodeFTS  = "FTS"
	CodeEPP  = "EPP"
	CodeFWE  = "FWE"
	CodeTEP  = "TEP"
	CodeENC  = "ENC"
	CodeCEC  = "CEC"
	CodeCLO  = "CLO"
	CodeCSE  = "CSE"
	CodePSE  = "PSE"
	CodeLBS  = "LBS"
	CodeBCD  = "BCD"
	CodeCCP  = "CCP"
	CodeISC  = "ISC"
)

var operations = []Operation{
	{CodeCUF, "/cuf", "Company name to domain", []string{"company_name", "country_code"}, []string{"domain"}},
	{CodeLCUF, "/lcuf", "Company LinkedIn URL finder", []string{"company_name"}, []string{"linkedin_url"}},
	{CodeDTC, "/dtc", "Domain to company name", []string{"company_website"}, []string{"company_name"}},
	{CodeDTE, "/dte", "Company email finder", []string{"company_website"}, []string{"emails"}},
	{CodeNTP, "/ntp", "Company phone finder", []string{"company_name"}, []string{"phones"}},
	{CodeREL, "/rel", "Reverse email lookup", []string{"email"}, []string{"person", "company"}},
	{CodeFCL, "/fcl", "Company lookalikes finder", []string{"query"}, []string{"lookalikes"}},
	{CodeELF, "/elf", "Company fundraising", []string{"query"}, []string{"fundraising"}},
	{CodeCAR, "/car", "Company revenue finder", []string{"query"}, []string{"revenue"}},
	{CodeFCC, "/fcc", "Company subsidiaries finder", []string{"query"}, []string{"subsidiaries"}},
	{CodeFTS, "/fts", "Company tech stack finder", []string{"query"}, []string{"tech_stack"}},
	{CodeEPP, "/epp", "LinkedIn profile enrichment", []string{"linkedin_url"}, []string{"person", "company"}},
	{CodeFWE, "/fwe", "LinkedIn profile email finder", []string{"linkedin_url"}, []string{"email"}},
	{CodeTEP, "/tep", "Person enrichment", []string{"full_name", "company"}, []string{"person"}},
	{CodeENC, "/enc", "Company enrichment", []string{"query"}, []string{"company"}},
	{CodeCEC, "/cec", "Company employee countries", []string{"query"}, []string{"countries", "total_results"}},
	{CodeCLO, "/clo", "Company locations", []string{"query"}, []string{"locations"}},
	{CodeCSE, "/cse", "Company search", nil, []string{"companies", "total_results", "page"}},
	{CodePSE, "/pse", "Person search", nil, []string{"people", "total_results", "page"}},
	{CodeLBS, "/lbs", "Local business search", nil, []string{"businesses", "total_results", "page"}},
	{CodeBCD, "/bcd", "B2B customers finder", []string{"url"}, []string{"customers"}},
	{CodeCCP, "/ccp", "Company careers page finder", []string{"url"}, []string{"careers_page_url"}},
	{CodeISC, "/isc", "SaaS company checker", []string{"url"}, []string{"is_saas"}},
}

var operationsByCode = func() map[string]*Operation {
	m := make(map[string]*Operation, len(operations))
	for i := range operations {
		m[operations[i].Code] = &operations[i]
	}
	return m
}()

// Operations returns a copy of the endpoint catalog in declaration order.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	for i, op := range operations {
		out[i] = op.clone()
	}
	return out
}

// LookupOperation returns the descriptor for code, e.g. "CUF".
func LookupOperation(code string) (Operation, bool) {
	op, ok := operationsByCode[code]
	if !ok {
		return Operation{}, false
	}
	return op.clone(), true
}

func (o Operation) clone() Operation {
	o.Required = append([]string(nil), o.Required...)
	o.Returns = append([]string(nil), o.Returns...)
	return o
}

func mustOperation(code string) *Operation {
	op, ok := operationsByCode[code]
	if !ok {
		panic("cufinder: unknown operation " + code)
	}
	return op
}
