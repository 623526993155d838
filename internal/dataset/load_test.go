package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/saleor-seed/internal/saleor"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.True(t, cfg.TaxClasses.Enabled)
	require.Len(t, cfg.TaxClasses.Data, 3)
	assert.Equal(t, "Standard Rate", cfg.TaxClasses.Data[0].Name)

	require.Len(t, cfg.Warehouses.Data, 1)
	assert.Equal(t, "10001", cfg.Warehouses.Data[0].Address.PostalCode)

	require.Len(t, cfg.Channels.Data, 1)
	assert.Equal(t, "web-store", cfg.Channels.Data[0].Slug)
	require.NotNil(t, cfg.Channels.Data[0].IsActive)
	assert.True(t, *cfg.Channels.Data[0].IsActive)

	require.Len(t, cfg.Shipping.Data, 2)
	domestic := cfg.Shipping.Data[0]
	assert.Equal(t, []string{"US"}, domestic.Countries)
	require.NotNil(t, domestic.Default)
	assert.False(t, *domestic.Default)
	require.Len(t, domestic.Methods, 2)
	assert.Equal(t, saleor.ShippingMethodPrice, domestic.Methods[0].Type)
	assert.Equal(t, map[string]float64{"web-store": 5}, domestic.Methods[0].ChannelPrices)

	require.Len(t, cfg.Attributes.Data, 6)
	assert.Equal(t, "#000000", cfg.Attributes.Data[0].Values[0].Value)

	apparel := cfg.ProductTypes.Data[0]
	assert.Equal(t, "apparel", apparel.Slug)
	assert.Equal(t, []string{"color", "brand", "material"}, apparel.ProductAttributeSlugs)
	assert.Equal(t, []string{"size"}, apparel.VariantAttributeSlugs)

	require.Len(t, cfg.Categories.Data, 3)
	assert.Len(t, cfg.Categories.Data[0].Children, 3)
	assert.Equal(t, "men", cfg.Categories.Data[0].Children[0].Slug)
	assert.Empty(t, cfg.Categories.Data[2].Children)

	assert.Equal(t, []string{"web-store"}, cfg.Collections.Data[1].ChannelSlugs)
	assert.Equal(t, []string{"author", "page-subtitle"}, cfg.PageTypes.Data[1].AttributeSlugs)

	terms := cfg.Pages.Data[2]
	assert.Equal(t, "Terms & Conditions", terms.Title)
	assert.Equal(t, "standard-page", terms.PageTypeSlug)
	assert.Empty(t, terms.PageType)

	require.Len(t, cfg.Menus.Data, 2)
	mainMenu := cfg.Menus.Data[0]
	assert.Equal(t, "navbar", mainMenu.Slug)
	assert.Equal(t, "/", mainMenu.Items[0].URL)
	assert.Equal(t, "clothing", mainMenu.Items[1].CategorySlug)
	assert.Equal(t, "kids", mainMenu.Items[1].Children[2].CategorySlug)
	assert.Equal(t, "sale", mainMenu.Items[3].CollectionSlug)
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeSeedFile(t, `
taxClasses:
  data:
    - name: Luxury Rate
      createCountryRates:
        - { countryCode: US, rate: 12.5 }
categories:
  enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.TaxClasses.Enabled, "enabled flag not named in the file keeps its default")
	require.Len(t, cfg.TaxClasses.Data, 1)
	assert.Equal(t, "Luxury Rate", cfg.TaxClasses.Data[0].Name)
	assert.Equal(t, 12.5, cfg.TaxClasses.Data[0].CreateCountryRates[0].Rate)

	assert.False(t, cfg.Categories.Enabled)
	assert.Len(t, cfg.Categories.Data, 3)

	assert.Len(t, cfg.Menus.Data, 2)
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	want, err := Default()
	require.NoError(t, err)
	assert.Equal(t, want, cfg)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeSeedFile(t, ""))
	require.NoError(t, err)
	assert.Len(t, cfg.Pages.Data, 3)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(writeSeedFile(t, "channels:\n  data:\n    - name: X\n      warehouse: main\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse seed file")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}
