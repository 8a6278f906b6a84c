package documents

import (
	"encoding/json"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// PublicSettingsResponse is the unauthenticated projection of the
// settings document consumed by the booking page.
type PublicSettingsResponse struct {
	CompanyName    string                    `json:"companyName"`
	CompanyEmail   string                    `json:"companyEmail"`
	CompanyPhone   string                    `json:"companyPhone"`
	CompanyAddress string                    `json:"companyAddress"`
	PaymentMethods domain.PaymentMethodFlags `json:"paymentMethods"`
	BookingEnabled bool                      `json:"bookingEnabled"`
}

func publicSettingsView(body json.RawMessage) (*PublicSettingsResponse, error) {
	settings := domain.DefaultSettings()
	if err := json.Unmarshal(body, settings); err != nil {
		return nil, err
	}

	return &PublicSettingsResponse{
		CompanyName:    settings.CompanyName,
		CompanyEmail:   settings.CompanyEmail,
		CompanyPhone:   settings.CompanyPhone,
		CompanyAddress: settings.CompanyAddress,
		PaymentMethods: settings.PaymentMethods,
		BookingEnabled: settings.BookingEnabled,
	}, nil
}
