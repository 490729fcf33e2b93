package developers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/game-catalog-service/internal/domain"
)

func TestNameFallsBackToTitle(t *testing.T) {
	d := Developer{Object: domain.Object{Title: "Nova"}}
	assert.Equal(t, "Nova", d.Name())

	d.Metadata.StudioName = "Nova Studio"
	assert.Equal(t, "Nova Studio", d.Name())
}

func TestDeveloperOmitsMissingLogo(t *testing.T) {
	raw, err := json.Marshal(Developer{Object: domain.Object{ID: "d1", Slug: "nova", Title: "Nova"}, Metadata: Metadata{StudioName: "Nova"}})
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "logo")
}
