package templates

import "time"

type lookupRequest struct {
	TemplateID string `json:"templateId"`
}

type settingRequest struct {
	TemplateID string `json:"templateSetting"`
}

// SettingResponse mirrors the stored styling template setting.
type SettingResponse struct {
	TemplateSetting string    `json:"templateSetting"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toSettingResponse(s Setting) SettingResponse {
	return SettingResponse{TemplateSetting: s.TemplateID, UpdatedAt: s.UpdatedAt}
}
