package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adaptation-engine/examples/plugs"
	"adaptation-engine/internal/manifest"
)

const (
	plugsManifest = "../../examples/plugs/adaptation.yaml"
	plugsPkg      = "adaptation-engine/examples/plugs"
)

func plugsCatalog(t *testing.T) *manifest.Catalog {
	t.Helper()

	catalog := manifest.NewCatalog()
	for name, factory := range plugs.Factories() {
		require.NoError(t, catalog.Add(name, factory))
	}

	return catalog
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	root := NewRootCommand(plugsCatalog(t))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", plugsManifest)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: "+plugsManifest)
	assert.Contains(t, out, "3 offers")
}

func TestCheck_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adaptation.yaml")
	content := `
offers:
  - from: UKStandard
    to: EUStandard
    factory: uk_to_eur
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := run(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, out, "error: [offers[0]] factory: [unknown_factory]")
	assert.Contains(t, out, "did you mean uk_to_eu?")
}

func TestCheck_NoManifest(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := run(t, "check")
	require.ErrorIs(t, err, errNoManifest)
}

func TestPlan(t *testing.T) {
	out, err := run(t, "plan", plugsManifest,
		"--from", plugsPkg+".UKPlug",
		"--to", plugsPkg+".JapanStandard")
	require.NoError(t, err)

	assert.Contains(t, out, "1. uk_to_eu: "+plugsPkg+".UKStandard -> "+plugsPkg+".EUStandard\n")
	assert.Contains(t, out, "2. eu_to_japan: "+plugsPkg+".EUStandard -> "+plugsPkg+".JapanStandard\n")
}

func TestPlan_AlreadySatisfied(t *testing.T) {
	out, err := run(t, "plan", plugsManifest,
		"--from", plugsPkg+".EUPlug",
		"--to", plugsPkg+".EUStandard")
	require.NoError(t, err)
	assert.Contains(t, out, "already satisfies")
}

func TestPlan_NoChain(t *testing.T) {
	_, err := run(t, "plan", plugsManifest,
		"--from", plugsPkg+".JapanStandard",
		"--to", plugsPkg+".UKStandard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no adaptation chain")
}

func TestPlan_DumpAndMetrics(t *testing.T) {
	out, err := run(t, "plan", plugsManifest, "--dump", "--metrics",
		"--from", plugsPkg+".UKPlug",
		"--to", plugsPkg+".EUStandard")
	require.NoError(t, err)

	assert.Contains(t, out, "(*adaptation.Offer)")
	assert.Contains(t, out, "adaptation_search_expansions_total")
}

func TestCapabilities(t *testing.T) {
	out, err := run(t, "capabilities", plugsManifest)
	require.NoError(t, err)

	assert.Contains(t, out, "CAPABILITY")
	assert.Contains(t, out, "plugs.UKPlug")
	assert.Contains(t, out, "plugs.UKStandard")
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "check", plugsManifest, "--log-level", "loud")
	require.Error(t, err)
}
