package schema

import (
	"strings"

	"github.com/ecotoken/platform-api/internal/apperr"
)

type CreateSite struct {
	SiteName string `json:"siteName"`
	ProdURL  string `json:"prodUrl"`
	StageURL string `json:"stageUrl"`
	DevURL   string `json:"devUrl"`
}

func (in *CreateSite) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(in.SiteName) == "" {
		fields["siteName"] = "A site name is required."
	}

	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}

type UpdateSite struct {
	SiteName string `json:"siteName"`
	ProdURL  string `json:"prodUrl"`
	StageURL string `json:"stageUrl"`
	DevURL   string `json:"devUrl"`
}

type UpdateCurrentSite struct {
	SiteID string `json:"siteID"`
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (in *Login) Validate() error {
	fields := map[string]string{}

	if in.Username == "" {
		fields["username"] = "A username is required."
	}
	if in.Password == "" {
		fields["password"] = "A password is required."
	}

	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}
