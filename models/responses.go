package models

// Response is the success envelope returned by every JSON endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the error envelope written by the terminal error writer.
// Message is always "Something went wrong"; ErrorMsg carries the detail.
type ErrorResponse struct {
	Message  string `json:"message"`
	ErrorMsg string `json:"error_msg"`
}

// SignUpResponse is the data of a successful sign-up. OTP is shown exactly
// once; the server keeps only its hash.
type SignUpResponse struct {
	User User `json:"user"`
	OTP  int  `json:"OTP"`
}

// TokenResponse is the data of a successful sign-in. AccessToken is the value
// to send back in the accesstoken header.
type TokenResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accesstoken"`
}

// CompanyDataResponse is the data of GET /companies/getCompanyData.
type CompanyDataResponse struct {
	Company Company `json:"company"`
	Jobs    []Job   `json:"jobs"`
}
