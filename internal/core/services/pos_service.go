package services

import (
	"context"
	"errors"
	"log"
	"strconv"

	"campuscoffee/internal/adapters/persistence/repositories"
	"campuscoffee/internal/core/domain"
)

// PosService handles business logic for points of sale
type PosService struct {
	*CrudService[domain.Pos]
	posRepo repositories.PosRepository
	osm     OsmDataService
}

// NewPosService creates a new POS service
func NewPosService(posRepo repositories.PosRepository, osm OsmDataService) *PosService {
	return &PosService{
		CrudService: NewCrudService[domain.Pos](posRepo),
		posRepo:     posRepo,
		osm:         osm,
	}
}

// GetByName gets a POS by its unique name
func (s *PosService) GetByName(ctx context.Context, name string) (domain.Pos, error) {
	return s.posRepo.GetByName(ctx, name)
}

// ImportFromOsmNode fetches an OpenStreetMap node, converts it to a POS on the
// given campus and upserts it. If a POS with the same name already exists it
// is updated in place rather than duplicated.
func (s *PosService) ImportFromOsmNode(ctx context.Context, nodeID int64, campus domain.CampusType) (domain.Pos, error) {
	log.Printf("Importing POS from OpenStreetMap node %d...", nodeID)

	node, err := s.osm.FetchNode(ctx, nodeID)
	if err != nil {
		return domain.Pos{}, err
	}

	pos, err := convertOsmNodeToPos(node, campus)
	if err != nil {
		return domain.Pos{}, err
	}

	existing, err := s.posRepo.GetByName(ctx, pos.Name)
	switch {
	case err == nil:
		pos.ID = existing.ID
	default:
		var notFound *domain.NotFoundError
		if !errors.As(err, &notFound) {
			return domain.Pos{}, err
		}
	}

	saved, err := s.Upsert(ctx, pos)
	if err != nil {
		return domain.Pos{}, err
	}

	log.Printf("✅ Imported POS '%s' from OSM node %d", saved.Name, nodeID)
	return saved, nil
}

// convertOsmNodeToPos converts an OSM node to a POS value, mapping the amenity
// to the POS type and parsing the postal code. A non-numeric postal code is
// reported as a missing "postcode" field.
func convertOsmNodeToPos(node domain.OsmNode, campus domain.CampusType) (domain.Pos, error) {
	postalCode, err := strconv.Atoi(node.Postcode)
	if err != nil {
		log.Printf("⚠️ Could not parse postcode '%s' of OSM node %d", node.Postcode, node.NodeID)
		return domain.Pos{}, domain.NewMissingField(domain.KindOsmNode, node.NodeID, "postcode")
	}

	return domain.NewPos(
		node.Name,
		node.Description,
		node.Amenity.PosType(),
		campus,
		node.Street,
		node.HouseNumber,
		postalCode,
		node.City,
	)
}
