package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildingNamedRooms(t *testing.T) {
	assert.Equal(t, "Arete", Building("ART GAL"))
	assert.Equal(t, "PE Complex", Building("LS POOL"))
	assert.Equal(t, "LH", Building("EC DEPT"))
	assert.Equal(t, "SOM", Building("QMIT OFFICE"))
}

func TestBuildingDashPrefixes(t *testing.T) {
	assert.Equal(t, "B", Building("B-201"))
	assert.Equal(t, "BEL", Building("BEL-104"))
	assert.Equal(t, "SEC-A", Building("SEC-A105"))
	assert.Equal(t, "SEC-C", Building("SEC-C212A"))
}

func TestBuildingBarePrefixes(t *testing.T) {
	assert.Equal(t, "CTC", Building("CTC 102"))
	assert.Equal(t, "LH", Building("LH 306"))
	assert.Equal(t, "BEL", Building("BEL 211"))
}

func TestBuildingUnknownRoomsResolveToThemselves(t *testing.T) {
	assert.Equal(t, "TBA", Building("TBA"))
	assert.Equal(t, "ZOOM", Building("ZOOM"))
}
