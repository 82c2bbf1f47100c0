package domain

import "time"

// Asset is a single embeddable binary stored as a data URI. The only
// key in use today is "logo", consumed by the sheet renderer.
type Asset struct {
	Key       string    `json:"key"`
	Data      string    `json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

const AssetKeyLogo = "logo"
