package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cimar/ecare-legends/internal/model"
)

// TestGenerate_Document verifies a well-formed PDF comes out, including with
// enough rows to force a page break.
func TestGenerate_Document(t *testing.T) {
	items := make([]model.LegendListItem, 60)
	for i := range items {
		items[i] = model.LegendListItem{
			ID:            int64(60 - i),
			Matricule:     "12345-A-6",
			ChauffeurName: "Jean Dupont",
		}
	}
	export := model.LegendExport{
		GeneratedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		Items:       items,
	}

	content, err := NewGenerator().Generate(export)

	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]))
}

// TestGenerate_Empty verifies an empty list still produces a document.
func TestGenerate_Empty(t *testing.T) {
	content, err := NewGenerator().Generate(model.LegendExport{GeneratedAt: time.Now()})

	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
