package schema

import (
	"strings"

	"github.com/ecotoken/platform-api/internal/apperr"
)

// CreateLocation carries no site ID: the handler injects the admin's selected
// site server-side, so a client can never write into a foreign tenant.
type CreateLocation struct {
	Location string `json:"location"`
	CN       string `json:"cn"`
	ST       string `json:"st"`
}

func (in *CreateLocation) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(in.Location) == "" {
		fields["location"] = "A location is required."
	}
	if len(in.CN) != 2 {
		fields["cn"] = "A country is required."
	}
	if len(in.ST) != 2 {
		fields["st"] = "A state/province is required."
	}

	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}

type UpdateLocation struct {
	Location string `json:"location"`
	CN       string `json:"cn"`
	ST       string `json:"st"`
}

func (in *UpdateLocation) Validate() error {
	fields := map[string]string{}

	if in.CN != "" && len(in.CN) != 2 {
		fields["cn"] = "A country is required."
	}
	if in.ST != "" && len(in.ST) != 2 {
		fields["st"] = "A state/province is required."
	}

	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}
