package osm

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"campuscoffee/internal/core/domain"
)

// DefaultBaseURL is the public OpenStreetMap API v0.6 endpoint
const DefaultBaseURL = "https://api.openstreetmap.org/api/0.6"

// Client fetches node data from the OpenStreetMap API and converts it to the
// domain representation. It implements services.OsmDataService.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new OSM API client. An empty baseURL selects the public
// OSM API endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// osmFile mirrors the OSM XML response structure: a root osm element wrapping
// a node element with id attribute and tag children.
type osmFile struct {
	XMLName xml.Name  `xml:"osm"`
	Node    *nodeElem `xml:"node"`
}

type nodeElem struct {
	ID   int64      `xml:"id,attr"`
	Tags []tagEntry `xml:"tag"`
}

type tagEntry struct {
	Key   string `xml:"k,attr"`
	Value string `xml:"v,attr"`
}

// FetchNode fetches an OSM node by ID and extracts the POS-relevant
// attributes. Every transport, protocol and parse failure is collapsed into a
// not-found error for the node; only a missing or unparsable required tag is
// reported as a missing-field error.
func (c *Client) FetchNode(ctx context.Context, nodeID int64) (domain.OsmNode, error) {
	log.Printf("Fetching OSM node with ID %d...", nodeID)

	body, err := c.fetch(ctx, nodeID)
	if err != nil {
		log.Printf("⚠️ Failed to fetch OSM node %d: %v", nodeID, err)
		return domain.OsmNode{}, notFound(nodeID)
	}
	if len(body) == 0 {
		log.Printf("⚠️ Empty response from OSM API for node %d", nodeID)
		return domain.OsmNode{}, notFound(nodeID)
	}

	tags, err := parseTags(body)
	if err != nil {
		log.Printf("⚠️ Failed to parse OSM response for node %d: %v", nodeID, err)
		return domain.OsmNode{}, notFound(nodeID)
	}

	return buildNode(nodeID, tags)
}

func (c *Client) fetch(ctx context.Context, nodeID int64) ([]byte, error) {
	url := fmt.Sprintf("%s/node/%d", c.baseURL, nodeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OSM API returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// parseTags decodes the XML payload into a tag map. The payload is well-formed
// only if it contains a node element with an id and at least one tag.
func parseTags(body []byte) (map[string]string, error) {
	var file osmFile
	if err := xml.Unmarshal(body, &file); err != nil {
		return nil, err
	}
	if file.Node == nil || file.Node.ID == 0 || len(file.Node.Tags) == 0 {
		return nil, fmt.Errorf("missing required elements or attributes in OSM response")
	}

	tags := make(map[string]string, len(file.Node.Tags))
	for _, tag := range file.Node.Tags {
		tags[tag.Key] = tag.Value
	}
	return tags, nil
}

// buildNode extracts the required attributes from the tag bag. The display
// name prefers the English name tag, then the German one, then the base name.
func buildNode(nodeID int64, tags map[string]string) (domain.OsmNode, error) {
	name, err := requiredTag(tags, "name", nodeID)
	if err != nil {
		return domain.OsmNode{}, err
	}
	city, err := requiredTag(tags, "addr:city", nodeID)
	if err != nil {
		return domain.OsmNode{}, err
	}
	street, err := requiredTag(tags, "addr:street", nodeID)
	if err != nil {
		return domain.OsmNode{}, err
	}
	houseNumber, err := requiredTag(tags, "addr:housenumber", nodeID)
	if err != nil {
		return domain.OsmNode{}, err
	}
	postcode, err := requiredTag(tags, "addr:postcode", nodeID)
	if err != nil {
		return domain.OsmNode{}, err
	}
	amenityValue, err := requiredTag(tags, "amenity", nodeID)
	if err != nil {
		return domain.OsmNode{}, err
	}

	amenity, ok := domain.ParseOsmAmenity(amenityValue)
	if !ok {
		log.Printf("⚠️ OSM node %d has unsupported amenity type '%s'", nodeID, amenityValue)
		return domain.OsmNode{}, domain.NewMissingField(domain.KindOsmNode, nodeID, "amenity")
	}

	if nameEn, ok := tags["name:en"]; ok {
		name = nameEn
	} else if nameDe, ok := tags["name:de"]; ok {
		name = nameDe
	}

	description, ok := tags["description"]
	if !ok {
		description = "n/a"
	}

	return domain.OsmNode{
		NodeID:      nodeID,
		City:        city,
		HouseNumber: houseNumber,
		Postcode:    postcode,
		Street:      street,
		Amenity:     amenity,
		Name:        name,
		Description: description,
	}, nil
}

func requiredTag(tags map[string]string, key string, nodeID int64) (string, error) {
	value, ok := tags[key]
	if !ok {
		log.Printf("⚠️ OSM node %d is missing required tag '%s'", nodeID, key)
		return "", domain.NewMissingField(domain.KindOsmNode, nodeID, key)
	}
	return value, nil
}

func notFound(nodeID int64) error {
	return domain.NewNotFoundByField(domain.KindOsmNode, "node ID", fmt.Sprintf("%d", nodeID))
}
