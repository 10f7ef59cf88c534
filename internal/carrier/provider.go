package carrier

import (
	"context"
	"fmt"

	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/models"
)

// CatalogProvider fetches a carrier's template catalog (boxes or services).
//
// Contract: a missing or rejected credential MUST come back as a
// CredentialsError, never as an empty catalog. The merge engine cannot tell
// "auth failed" apart from "the carrier removed everything", so the provider
// has to.
type CatalogProvider interface {
	FetchCatalog(ctx context.Context, carrierName string, kind models.ResourceKind, credentials map[string]string) ([]models.ProviderItem, error)
}

// CredentialsError reports that one carrier's sync cannot run. Other
// carriers in the same batch proceed independently.
type CredentialsError struct {
	Carrier string
	Reason  string
}

func (e *CredentialsError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("missing or invalid credentials for carrier %s", e.Carrier)
	}
	return fmt.Sprintf("missing or invalid credentials for carrier %s: %s", e.Carrier, e.Reason)
}
