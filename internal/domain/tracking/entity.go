package tracking

// DeviceInfo identifies the reporting device in a position report.
type DeviceInfo struct {
	Platform string `json:"platform"`
	Version  string `json:"version"`
	DeviceID string `json:"deviceId,omitempty"`
}

// Report is one raw position sent to the fleet tracking endpoint.
// Timestamp is unix milliseconds.
type Report struct {
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Accuracy   *float64   `json:"accuracy"`
	Timestamp  int64      `json:"timestamp"`
	DeviceInfo DeviceInfo `json:"deviceInfo"`
}
