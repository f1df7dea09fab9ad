package models

// CarConfig is a static registry entry. It is never mutated at runtime.
type CarConfig struct {
	Plate          string `json:"plate"`
	NotifyEndpoint string `json:"-"`
	Phone          string `json:"phone,omitempty"`
}

// HasPhone reports whether the owner can be called back
func (c CarConfig) HasPhone() bool {
	return c.Phone != ""
}
