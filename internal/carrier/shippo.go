package carrier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/models"
)

// ShippoProvider fetches carrier template catalogs through the Shippo API.
// One aggregator account fronts the individual carrier accounts, the carrier
// token for each carrier lives in the credentials map.
type ShippoProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewShippoProvider creates a provider against the given API base URL
// (e.g. https://api.goshippo.com).
func NewShippoProvider(baseURL string) *ShippoProvider {
	return &ShippoProvider{
		baseURL: baseURL,
		// Timeout prevents hanging API calls
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// shippoTemplate is one entry of Shippo's template listing. Boxes and
// services share the listing shape, "token" is the mail class for boxes and
// the service code for services.
type shippoTemplate struct {
	Carrier    string `json:"carrier"`
	Token      string `json:"token"`
	Name       string `json:"name"`
	Length     string `json:"length"` // Shippo sends dimensions as strings, e.g. "12.25"
	Width      string `json:"width"`
	Height     string `json:"height"`
	MaxWeight  string `json:"max_weight"`
	IsVariable bool   `json:"is_variable_dimensions"`
}

// FetchCatalog pulls the full template catalog for one carrier and maps it
// to provider items for the merge engine.
func (p *ShippoProvider) FetchCatalog(ctx context.Context, carrierName string, kind models.ResourceKind, credentials map[string]string) ([]models.ProviderItem, error) {
	token := credentials[carrierName]
	if token == "" {
		// No account token configured for this carrier. Report it as a
		// credential failure so the caller skips the sync, an empty catalog
		// here would wipe the carrier's resources downstream.
		return nil, &CredentialsError{Carrier: carrierName, Reason: "no account token configured"}
	}

	endpoint := p.baseURL + "/parcel-templates"
	if kind == models.KindService {
		endpoint = p.baseURL + "/service-levels"
	}
	endpoint += "?carrier=" + url.QueryEscape(carrierName)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, errors.New("failed to create catalog request: " + err.Error())
	}
	req.Header.Set("Authorization", "ShippoToken "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.New("failed to call catalog API: " + err.Error())
	}
	defer resp.Body.Close()

	// 401/403 means the stored token was rejected. Same rule as a missing
	// token: this is a credential failure, not an empty catalog.
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &CredentialsError{Carrier: carrierName, Reason: "carrier rejected the account token"}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("catalog API error: status " + resp.Status)
	}

	var listing struct {
		Results []shippoTemplate `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, errors.New("failed to parse catalog response: " + err.Error())
	}

	items := make([]models.ProviderItem, 0, len(listing.Results))
	for _, tpl := range listing.Results {
		// Variable templates come with empty dimension strings, ParseFloat
		// then gives zero which is exactly what the merge expects.
		length, _ := strconv.ParseFloat(tpl.Length, 64)
		width, _ := strconv.ParseFloat(tpl.Width, 64)
		height, _ := strconv.ParseFloat(tpl.Height, 64)
		maxWeight, _ := strconv.ParseFloat(tpl.MaxWeight, 64)

		items = append(items, models.ProviderItem{
			Kind: kind,
			Carrier: models.CarrierIdentity{
				CarrierCode: tpl.Carrier,
				SubClass:    tpl.Token,
			},
			Name:       tpl.Name,
			Dimensions: models.Dimensions{Length: length, Width: width, Height: height},
			MaxWeight:  maxWeight,
			Editable:   tpl.IsVariable,
		})
	}
	return items, nil
}
