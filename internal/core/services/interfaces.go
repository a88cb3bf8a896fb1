package services

import (
	"context"

	"campuscoffee/internal/core/domain"
)

// OsmDataService defines the external-node fetch port consumed by the POS
// service. Implementations fetch a node record from the OpenStreetMap API and
// convert it to the domain representation. Any fetch failure is reported as a
// not-found error for the node; a missing or unparsable required tag is
// reported as a missing-field error.
type OsmDataService interface {
	FetchNode(ctx context.Context, nodeID int64) (domain.OsmNode, error)
}
