package models

// SignMintRequest is the body of POST /sign-mint. The fid hint is optional:
// it is only used to resolve the user record when the wallet address alone
// does not.
type SignMintRequest struct {
	UserAddress string `json:"userAddress"`
	CourseID    string `json:"courseId"`
	FID         int64  `json:"fid,omitempty"`
}

// SignMintResponse is the success envelope of POST /sign-mint. SignerAddress
// is returned for client-side debugging and verification only; the contract
// trusts its own configured signer, not this field.
type SignMintResponse struct {
	Success         bool   `json:"success"`
	Signature       string `json:"signature"`
	CourseIDNumeric int64  `json:"courseIdNumeric"`
	SignerAddress   string `json:"signerAddress"`
}

// ErrorResponse is the failure envelope shared by all endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
