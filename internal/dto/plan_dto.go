package dto

import "time"

type PlanStatusResponse struct {
	Plan   string `json:"plan"`
	Status string `json:"status"`
	// Entitled is the server-side verdict on gated features. It covers
	// cases plain plan+status cannot express, like a canceled subscription
	// that is still inside its paid period.
	Entitled    bool       `json:"entitled"`
	ProFeatures []string   `json:"pro_features"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`
}

type UpgradePlanResponse struct {
	OrderId     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}
