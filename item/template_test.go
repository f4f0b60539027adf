package item

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockCatalogIsValid(t *testing.T) {
	require.Len(t, Templates, 32)

	seen := map[string]bool{}
	for _, tpl := range Templates {
		assert.NoError(t, tpl.validate(), tpl.Name)
		assert.False(t, seen[tpl.Name], "duplicate template %q", tpl.Name)
		seen[tpl.Name] = true
	}

	for _, tpl := range WearableTemplates {
		require.NoError(t, tpl.validate(), tpl.Name)
		assert.Equal(t, CategoryWearable, tpl.Category, tpl.Name)
		assert.NotEmpty(t, tpl.Slot, tpl.Name)
	}
}

func TestLoadTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	payload := `
- name: Ion Coil
  description: salvage-grade power coil
  category: tech
  base_price: 120
- name: Dust Cloak
  description: keeps the regolith out
  category: wearable
  base_price: 80
  slot: body
  mood_bonus: 3
`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	templates, err := LoadTemplates(path)
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "Ion Coil", templates[0].Name)
	assert.EqualValues(t, 120, templates[0].BasePrice)
	assert.Equal(t, SlotBody, templates[1].Slot)
	assert.Equal(t, 3, templates[1].MoodBonus)
}

func TestLoadTemplatesRejectsBadCatalog(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTemplates(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("[]\n"), 0o644))
	_, err = LoadTemplates(empty)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- name: Thing\n  category: mystery\n  base_price: 10\n"), 0o644))
	_, err = LoadTemplates(bad)
	assert.Error(t, err)
}
