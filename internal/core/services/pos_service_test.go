package services

import (
	"context"
	"errors"
	"testing"

	"campuscoffee/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOsmService serves canned nodes by ID
type fakeOsmService struct {
	nodes map[int64]domain.OsmNode
	errs  map[int64]error
}

func (f *fakeOsmService) FetchNode(ctx context.Context, nodeID int64) (domain.OsmNode, error) {
	if err, ok := f.errs[nodeID]; ok {
		return domain.OsmNode{}, err
	}
	node, ok := f.nodes[nodeID]
	if !ok {
		return domain.OsmNode{}, domain.NewNotFoundByField(domain.KindOsmNode, "node ID", "unknown")
	}
	return node, nil
}

func sampleNode(nodeID int64) domain.OsmNode {
	return domain.OsmNode{
		NodeID:      nodeID,
		City:        "Heidelberg",
		HouseNumber: "205",
		Postcode:    "69120",
		Street:      "Im Neuenheimer Feld",
		Amenity:     domain.AmenityCafe,
		Name:        "Botanik Cafe",
		Description: "n/a",
	}
}

func TestPosServiceImportFromOsmNode(t *testing.T) {
	posRepo := newFakePosRepo()
	osm := &fakeOsmService{nodes: map[int64]domain.OsmNode{42: sampleNode(42)}}
	svc := NewPosService(posRepo, osm)

	pos, err := svc.ImportFromOsmNode(context.Background(), 42, domain.CampusINF)
	require.NoError(t, err)
	assert.NotZero(t, pos.ID)
	assert.Equal(t, "Botanik Cafe", pos.Name)
	assert.Equal(t, "n/a", pos.Description)
	assert.Equal(t, domain.PosTypeCafe, pos.Type)
	assert.Equal(t, domain.CampusINF, pos.Campus)
	assert.Equal(t, "Im Neuenheimer Feld", pos.Street)
	assert.Equal(t, "205", pos.HouseNumber)
	assert.Equal(t, 69120, pos.PostalCode)
	assert.Equal(t, "Heidelberg", pos.City)
}

func TestPosServiceImportUpdatesExisting(t *testing.T) {
	posRepo := newFakePosRepo()
	node := sampleNode(42)
	osm := &fakeOsmService{nodes: map[int64]domain.OsmNode{42: node}}
	svc := NewPosService(posRepo, osm)
	ctx := context.Background()

	first, err := svc.ImportFromOsmNode(ctx, 42, domain.CampusINF)
	require.NoError(t, err)

	// re-importing the same node updates the existing POS in place
	node.Street = "Berliner Straße"
	osm.nodes[42] = node

	second, err := svc.ImportFromOsmNode(ctx, 42, domain.CampusINF)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Berliner Straße", second.Street)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPosServiceImportMalformedPostcode(t *testing.T) {
	posRepo := newFakePosRepo()
	node := sampleNode(42)
	node.Postcode = "sixty-nine"
	osm := &fakeOsmService{nodes: map[int64]domain.OsmNode{42: node}}
	svc := NewPosService(posRepo, osm)

	_, err := svc.ImportFromOsmNode(context.Background(), 42, domain.CampusINF)
	var missing *domain.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "postcode", missing.Field)
	assert.Equal(t, int64(42), missing.ID)
}

func TestPosServiceImportFetchFailure(t *testing.T) {
	posRepo := newFakePosRepo()
	osm := &fakeOsmService{
		errs: map[int64]error{42: domain.NewNotFoundByField(domain.KindOsmNode, "node ID", "42")},
	}
	svc := NewPosService(posRepo, osm)
	ctx := context.Background()

	_, err := svc.ImportFromOsmNode(ctx, 42, domain.CampusINF)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.KindOsmNode, notFound.Kind)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "nothing is persisted when the fetch fails")
}

// brokenPosRepo fails every name lookup with a storage error
type brokenPosRepo struct {
	*fakePosRepo
	err error
}

func (b *brokenPosRepo) GetByName(ctx context.Context, name string) (domain.Pos, error) {
	return domain.Pos{}, b.err
}

func TestPosServiceImportStorageFailure(t *testing.T) {
	posRepo := &brokenPosRepo{fakePosRepo: newFakePosRepo(), err: errors.New("connection reset by peer")}
	osm := &fakeOsmService{nodes: map[int64]domain.OsmNode{42: sampleNode(42)}}
	svc := NewPosService(posRepo, osm)
	ctx := context.Background()

	// a failed name lookup must propagate, not degrade into a blind insert
	_, err := svc.ImportFromOsmNode(ctx, 42, domain.CampusINF)
	require.ErrorIs(t, err, posRepo.err)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPosServiceGetByName(t *testing.T) {
	posRepo := newFakePosRepo()
	svc := NewPosService(posRepo, &fakeOsmService{})
	ctx := context.Background()

	created, err := svc.Upsert(ctx, domain.Pos{Name: "Botanik Cafe"})
	require.NoError(t, err)

	found, err := svc.GetByName(ctx, "Botanik Cafe")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByName(ctx, "Nonexistent Cafe")
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
