package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/brewcalc/pkg/adapters/fs"
	"github.com/aretw0/brewcalc/pkg/core"
)

func parse(t *testing.T, doc string) core.RecordSet {
	t.Helper()
	set, err := fs.ParseCatalog(strings.NewReader(doc))
	require.NoError(t, err)
	return set
}

func TestParseCatalog_Fermentables(t *testing.T) {
	set := parse(t, `
fermentables:
  Pale Malt:
    type: Grain
    amount: 5
    yield: 78
    color: 3
    recommend_mash: true
  Corn Sugar:
    version: 2
    type: Sugar
    amount: 0.5
    yield: 100
    origin: US
`)
	c, ok := set.(*core.Collection[core.Fermentable])
	require.True(t, ok, "got %T", set)
	assert.Equal(t, []string{"Pale Malt", "Corn Sugar"}, c.Names())

	pale, _ := c.Get("Pale Malt")
	assert.Equal(t, core.Fermentable{
		Name: "Pale Malt", Version: 1, Type: core.FermentableGrain,
		Amount: 5, Yield: 78, Color: 3, RecommendMash: true,
	}, pale)

	sugar, _ := c.Get("Corn Sugar")
	assert.Equal(t, int64(2), sugar.Version)
	assert.Equal(t, core.FermentableSugar, sugar.Type)
	require.NotNil(t, sugar.Origin)
	assert.Equal(t, "US", *sugar.Origin)
}

func TestParseCatalog_EveryKind(t *testing.T) {
	for _, kind := range core.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			set := parse(t, kind.CatalogKey()+":\n  First:\n  Second:\n")
			got, ok := core.KindOf(set)
			require.True(t, ok)
			assert.Equal(t, kind, got)
			assert.Equal(t, 2, set.Len())
		})
	}
}

func TestParseCatalog_OptionalEnums(t *testing.T) {
	set := parse(t, `
yeasts:
  US-05:
    type: Ale
    form: Dry
    amount: 0.0115
    flocculation: Very High
  WLP001:
    type: Ale
    form: Slant
`)
	c := set.(*core.Collection[core.Yeast])
	us05, _ := c.Get("US-05")
	require.NotNil(t, us05.Flocculation)
	assert.Equal(t, core.FlocculationVeryHigh, *us05.Flocculation)

	wlp, _ := c.Get("WLP001")
	assert.Nil(t, wlp.Flocculation)
	assert.Equal(t, core.YeastSlant, wlp.Form)
}

func TestParseCatalog_Empty(t *testing.T) {
	for _, doc := range []string{"", "# nothing here\n", "---\n", "~\n"} {
		set := parse(t, doc)
		assert.Equal(t, core.Empty{}, set, "%q", doc)
	}

	// A kind with no records is an empty collection, not Empty.
	set := parse(t, "hops:\n")
	c, ok := set.(*core.Collection[core.Hop])
	require.True(t, ok)
	assert.Zero(t, c.Len())
}

func TestParseCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"UnknownKind", "grains:\n  Pale:\n", `unknown record kind "grains"`},
		{"TwoKinds", "hops:\n  A:\nyeasts:\n  B:\n", "exactly one record kind"},
		{"NotAMapping", "- hops\n", "must be a mapping"},
		{"RecordsNotAMapping", "hops:\n  - Cascade\n", "must map names to records"},
		{"Duplicate", "hops:\n  Cascade:\n  Saaz:\n  Cascade:\n", `duplicate record "Cascade"`},
		{"BadYAML", "hops: [\n", "invalid yaml"},
		{"BadField", "hops:\n  Cascade:\n    alpha: lots\n", `hop "Cascade"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fs.ParseCatalog(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseCatalog_BadEnumToken(t *testing.T) {
	_, err := fs.ParseCatalog(strings.NewReader("hops:\n  Cascade:\n    use: Whirlpool\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNoSuchVariant)

	var pe *core.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "HopUse", pe.Type)
	assert.Equal(t, "Whirlpool", pe.Value)
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoadCatalogs(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b/hops.yaml":        "hops:\n  Cascade:\n    alpha: 5.5\n",
		"a/malts.yaml":       "fermentables:\n  Pale Malt:\n    yield: 78\n",
		"a/deep/water.yaml":  "waters:\n  Burton:\n    calcium: 295\n",
		"a/readme.txt":       "not a catalogue",
		"a/deep/empty.yaml":  "",
		"c.yaml/ignored.txt": "directory named like a catalogue",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cats, err := fs.LoadCatalogs(filepath.Join(dir, "**", "*.yaml"))
	require.NoError(t, err)

	var got []string
	for _, c := range cats {
		rel, err := filepath.Rel(dir, c.Path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{"a/deep/empty.yaml", "a/deep/water.yaml", "a/malts.yaml", "b/hops.yaml"}, got)
	assert.Equal(t, core.Empty{}, cats[0].Set)
	assert.Equal(t, 1, cats[1].Set.Len())
}

func TestLoadCatalogs_ReportsPath(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("grains:\n"), 0o644))

	_, err := fs.LoadCatalogs(filepath.Join(dir, "*.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}

func TestLoadCatalog_Missing(t *testing.T) {
	_, err := fs.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseCatalog_LegacySlateForm(t *testing.T) {
	set := parse(t, "yeasts:\n  Old Culture:\n    form: Slate\n")
	y, ok := set.(*core.Collection[core.Yeast]).Get("Old Culture")
	require.True(t, ok)
	assert.Equal(t, core.YeastSlant, y.Form)
}
