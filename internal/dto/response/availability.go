package response

type SlotStatus string

const (
	SlotAvailable   SlotStatus = "AVAILABLE"
	SlotUnavailable SlotStatus = "UNAVAILABLE"
)

type SlotInfo struct {
	StartTime  string     `json:"startTime"`
	EndTime    string     `json:"endTime"`
	Status     SlotStatus `json:"status"`
	PriceCents int        `json:"priceCents"`
}

type AvailabilityResponse struct {
	Date   string     `json:"date"`
	RoomID string     `json:"roomId"`
	Slots  []SlotInfo `json:"slots"`
}
