package cufinder

import "context"

// CUF finds a company's domain from its name and country code.
func (c *Client) CUF(ctx context.Context, params CUFParams) (*CUFResponse, error) {
	return call[CUFParams, CUFResponse](ctx, c, mustOperation(CodeCUF), params)
}

// LCUF finds a company's LinkedIn URL from its name.
func (c *Client) LCUF(ctx context.Context, params LCUFParams) (*LCUFResponse, error) {
	return call[LCUFParams, LCUFResponse](ctx, c, mustOperation(CodeLCUF), params)
}

// DTC resolves a website to a company name.
func (c *Client) DTC(ctx context.Context, params DTCParams) (*DTCResponse, error) {
	return call[DTCParams, DTCResponse](ctx, c, mustOperation(CodeDTC), params)
}

// DTE finds email addresses for a company website.
func (c *Client) DTE(ctx context.Context, params DTEParams) (*DTEResponse, error) {
	return call[DTEParams, DTEResponse](ctx, c, mustOperation(CodeDTE), params)
}

// NTP finds phone numbers for a company name.
func (c *Client) NTP(ctx context.Context, params NTPParams) (*NTPResponse, error) {
	return call[NTPParams, NTPResponse](ctx, c, mustOperation(CodeNTP), params)
}

// REL looks up the person and company behind an email address.
func (c *Client) REL(ctx context.Context, params RELParams) (*RELResponse, error) {
	return call[RELParams, RELResponse](ctx, c, mustOperation(CodeREL), params)
}

// FCL finds companies similar to the query.
func (c *Client) FCL(ctx context.Context, params QueryParams) (*FCLResponse, error) {
	return call[QueryParams, FCLResponse](ctx, c, mustOperation(CodeFCL), params)
}

// ELF returns fundraising information for a company.
func (c *Client) ELF(ctx context.Context, params QueryParams) (*ELFResponse, error) {
	return call[QueryParams, ELFResponse](ctx, c, mustOperation(CodeELF), params)
}

// CAR returns a company's annual revenue.
func (c *Client) CAR(ctx context.Context, params QueryParams) (*CARResponse, error) {
	return call[QueryParams, CARResponse](ctx, c, mustOperation(CodeCAR), params)
}

// FCC lists a company's subsidiaries.
func (c *Client) FCC(ctx context.Context, params QueryParams) (*FCCResponse, error) {
	return call[QueryParams, FCCResponse](ctx, c, mustOperation(CodeFCC), params)
}

// FTS returns a company's technology stack.
func (c *Client) FTS(ctx context.Context, params QueryParams) (*FTSResponse, error) {
	return call[QueryParams, FTSResponse](ctx, c, mustOperation(CodeFTS), params)
}

// EPP enriches a LinkedIn profile with person and company data.
func (c *Client) EPP(ctx context.Context, params EPPParams) (*EPPResponse, error) {
	return call[EPPParams, EPPResponse](ctx, c, mustOperation(CodeEPP), params)
}

// FWE finds the work email behind a LinkedIn profile.
func (c *Client) FWE(ctx context.Context, params FWEParams) (*FWEResponse, error) {
	return call[FWEParams, FWEResponse](ctx, c, mustOperation(CodeFWE), params)
}

// TEP enriches a person given their full name and company.
func (c *Client) TEP(ctx context.Context, params TEPParams) (*TEPResponse, error) {
	return call[TEPParams, TEPResponse](ctx, c, mustOperation(CodeTEP), params)
}

// ENC enriches a company.
func (c *Client) ENC(ctx context.Context, params QueryParams) (*ENCResponse, error) {
	return call[QueryParams, ENCResponse](ctx, c, mustOperation(CodeENC), params)
}

// CEC lists the countries a company's employees are located in.
func (c *Client) CEC(ctx context.Context, params QueryParams) (*CECResponse, error) {
	return call[QueryParams, CECResponse](ctx, c, mustOperation(CodeCEC), params)
}

// CLO lists a company's office locations.
func (c *Client) CLO(ctx context.Context, params QueryParams) (*CLOResponse, error) {
	return call[QueryParams, CLOResponse](ctx, c, mustOperation(CodeCLO), params)
}

// CSE searches companies. All filters are optional; one page is returned
// per call.
func (c *Client) CSE(ctx context.Context, params CSEParams) (*CSEResponse, error) {
	return call[CSEParams, CSEResponse](ctx, c, mustOperation(CodeCSE), params)
}

// PSE searches people. All filters are optional; one page is returned per
// call.
func (c *Client) PSE(ctx context.Context, params PSEParams) (*PSEResponse, error) {
	return call[PSEParams, PSEResponse](ctx, c, mustOperation(CodePSE), params)
}

// LBS searches local businesses. All filters are optional; one page is
// returned per call.
func (c *Client) LBS(ctx context.Context, params LBSParams) (*LBSResponse, error) {
	return call[LBSParams, LBSResponse](ctx, c, mustOperation(CodeLBS), params)
}

// BCD extracts the B2B customers listed on a website.
func (c *Client) BCD(ctx context.Context, params URLParams) (*BCDResponse, error) {
	return call[URLParams, BCDResponse](ctx, c, mustOperation(CodeBCD), params)
}

// CCP finds a company's careers page.
func (c *Client) CCP(ctx context.Context, params URLParams) (*CCPResponse, error) {
	return call[URLParams, CCPResponse](ctx, c, mustOperation(CodeCCP), params)
}

// ISC reports whether a website belongs to a SaaS company.
func (c *Client) ISC(ctx context.Context, params URLParams) (*ISCResponse, error) {
	return call[URLParams, ISCResponse](ctx, c, mustOperation(CodeISC), params)
}
