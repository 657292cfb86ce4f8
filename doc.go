// Package cufinder provides a Go client SDK for the CUFinder B2B data
// enrichment API.
//
// Each API endpoint is exposed as one method named after its vendor code.
// Methods validate required parameters locally, send a single POST request
// and decode the response into a typed result.
//
// Basic usage:
//
//	client, err := cufinder.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Find a company's domain
//	res, err := client.CUF(ctx, cufinder.CUFParams{
//	    CompanyName: "TechCorp",
//	    CountryCode: "US",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Domain:", res.Domain)
//
// Errors can be matched with errors.Is against ErrUnauthorized,
// ErrRateLimited, ErrCreditLimitExceeded, ErrValidation and ErrDecode, or
// unpacked with errors.As into *APIError, *NetworkError, *ValidationError
// and *DecodeError.
//
// [Operations] returns the endpoint catalog, which tools such as the
// cufinder command use to discover paths and required parameters.
package cufinder

// Version is the SDK version, sent in the default User-Agent.
const Version = "1.0.0"
