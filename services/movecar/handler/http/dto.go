package http

import "github.com/piresc/movecar/internal/pkg/models"

// VerifyLicenseRequest is the body of POST /api/verify-license
type VerifyLicenseRequest struct {
	License string `json:"license" validate:"plate"`
}

// VerifyLicenseResponse reports whether a plate is registered
type VerifyLicenseResponse struct {
	Success bool   `json:"success"`
	License string `json:"license,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`
}

// NotifyRequest is the body of POST /api/notify
type NotifyRequest struct {
	License  string              `json:"license" validate:"plate"`
	Message  string              `json:"message"`
	Location *models.Coordinates `json:"location"`
	Delayed  bool                `json:"delayed"`
}

// OwnerConfirmRequest is the body of POST /api/owner-confirm
type OwnerConfirmRequest struct {
	License   string              `json:"license" validate:"plate"`
	Location  *models.Coordinates `json:"location"`
	AllowCall bool                `json:"allowCall"`
}

// SuccessResponse is returned by mutating endpoints
type SuccessResponse struct {
	Success bool `json:"success"`
}

// LocationErrorResponse is returned by GET /api/get-location on failure
type LocationErrorResponse struct {
	Error string `json:"error"`
}
