package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `{
  "electronics": {
    "products": [
      {
        "name": "AirPods",
        "description": "Wireless earbuds with high resale demand",
        "price_range": "10.90-80",
        "target_market": "Students",
        "selling_points": ["High margin", "Fast sellers"]
      },
      {
        "name": "Smart Watch",
        "description": "Premium wearable",
        "price_range": "120-300",
        "target_market": "Professionals"
      }
    ],
    "market_insights": {"trend": "growing"}
  },
  "pricing_strategies": {
    "tips": ["Undercut by 10%", "Bundle slow movers"]
  },
  "budget_recommendations": {
    "under_50": "Start with small electronics"
  }
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "knowledge_base.json")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0600))
	return path
}

func TestLoad_ParsesSections(t *testing.T) {
	base, err := Load(writeFixture(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"budget_recommendations", "electronics", "pricing_strategies"}, base.Sections())
}

func TestLoad_MissingFileYieldsEmptyBase(t *testing.T) {
	base, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	assert.Empty(t, base.Sections())
	assert.Empty(t, base.Relevant("pricing question", nil))
}

func TestLoad_MalformedJSONFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRelevant_KeywordRouting(t *testing.T) {
	base, err := Load(writeFixture(t))
	require.NoError(t, err)

	out := base.Relevant("what price should I set", nil)
	assert.Contains(t, out, "Pricing Strategies")
	assert.Contains(t, out, "Undercut by 10%")
	assert.NotContains(t, out, "AirPods")
}

func TestRelevant_LowBudgetFiltersProducts(t *testing.T) {
	base, err := Load(writeFixture(t))
	require.NoError(t, err)

	budget := 30.0
	out := base.Relevant("anything", &budget)

	assert.Contains(t, out, "AirPods", "affordable product should be listed")
	assert.NotContains(t, out, "Smart Watch", "product above budget should be filtered out")
	assert.Contains(t, out, "High margin")
}

func TestRelevant_BudgetFallback(t *testing.T) {
	base, err := Load(writeFixture(t))
	require.NoError(t, err)

	budget := 500.0
	out := base.Relevant("no keywords here", &budget)

	assert.Contains(t, out, "Budget Recommendations")
	assert.Contains(t, out, "Start with small electronics")
}

func TestSearch_ReturnsRoutedPassages(t *testing.T) {
	base, err := Load(writeFixture(t))
	require.NoError(t, err)

	matches := base.Search("how should I price this")
	assert.Contains(t, matches, "Undercut by 10%")
	assert.Contains(t, matches, "Bundle slow movers")
}

func TestSearch_NoKeywordSearchesEverything(t *testing.T) {
	base, err := Load(writeFixture(t))
	require.NoError(t, err)

	matches := base.Search("zzz")
	assert.Contains(t, matches, "Start with small electronics")
	assert.Contains(t, matches, "Undercut by 10%")
}

func TestMinPrice(t *testing.T) {
	testcases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"10.90-80", 10.90, false},
		{"$120-300", 120, false},
		{"free", 0, true},
	}

	for _, tc := range testcases {
		got, err := minPrice(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
