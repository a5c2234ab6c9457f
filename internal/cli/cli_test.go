package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auroraledger/internal/config"
	"auroraledger/internal/network"
	"auroraledger/internal/payload"
)

const testCatalogJSON = `{
  "rpc_profiles": {
    "devnet": {
      "rpc": "https://rpc.devnet.example",
      "explorer": "https://explorer.devnet.example",
      "description": "Throwaway developer network"
    }
  }
}`

// workspace lays out a config file, catalog, and empty dirs under a temp
// root and returns the config path.
func workspace(t *testing.T) (string, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	networks := filepath.Join(dir, "networks.json")
	require.NoError(t, os.WriteFile(networks, []byte(testCatalogJSON), 0o644))

	cfg := &config.Config{
		RecordsDir:   filepath.Join(dir, "records"),
		PlansDir:     filepath.Join(dir, "plans"),
		NetworksFile: networks,
		Network:      "devnet",
		LogLevel:     "error",
	}
	cfgPath := filepath.Join(dir, "auroraledger.yaml")
	require.NoError(t, config.Save(cfgPath, cfg))
	return cfgPath, cfg
}

func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildRecordsSummaryFlow(t *testing.T) {
	cfgPath, cfg := workspace(t)

	for _, op := range []string{"mint", "mint", "swap"} {
		out, err := run(t, cfgPath, "build", "--op", op, "--target", "0xabc", "--amount", "2.5")
		require.NoError(t, err)
		assert.Contains(t, out, "recorded at")
	}

	out, err := run(t, cfgPath, "records")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved payloads:")

	entries, err := os.ReadDir(cfg.RecordsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	out, err = run(t, cfgPath, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Payload summary: 3 entries, 7.5 total amount.")
	assert.Contains(t, out, "mint: 2")
	assert.Contains(t, out, "swap: 1")
	assert.Contains(t, out, "stake: 0")
}

func TestBuildWithNetworkStampsProfile(t *testing.T) {
	cfgPath, cfg := workspace(t)

	_, err := run(t, cfgPath, "build", "--op", "stake", "--target", "0xabc",
		"--amount", "1", "--network", "devnet")
	require.NoError(t, err)

	entries, err := os.ReadDir(cfg.RecordsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(cfg.RecordsDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"network": "devnet"`)
	assert.Contains(t, string(data), `"rpc": "https://rpc.devnet.example"`)
}

func TestBuildInvalidOpWritesNothing(t *testing.T) {
	cfgPath, cfg := workspace(t)

	_, err := run(t, cfgPath, "build", "--op", "burn", "--target", "0xabc", "--amount", "1")
	require.ErrorIs(t, err, payload.ErrInvalidOperation)
	assert.NoDirExists(t, cfg.RecordsDir)
}

func TestBuildInvalidAmountWritesNothing(t *testing.T) {
	cfgPath, cfg := workspace(t)

	_, err := run(t, cfgPath, "build", "--op", "mint", "--target", "0xabc", "--amount", "ten")
	require.ErrorIs(t, err, payload.ErrInvalidAmount)
	assert.NoDirExists(t, cfg.RecordsDir)
}

func TestBuildUnknownNetworkWritesNothing(t *testing.T) {
	cfgPath, cfg := workspace(t)

	_, err := run(t, cfgPath, "build", "--op", "mint", "--target", "0xabc",
		"--amount", "1", "--network", "mainnet")
	require.ErrorIs(t, err, network.ErrUnknownNetwork)
	assert.NoDirExists(t, cfg.RecordsDir)
}

func TestRecordsEmptyStore(t *testing.T) {
	cfgPath, _ := workspace(t)

	out, err := run(t, cfgPath, "records")
	require.NoError(t, err)
	assert.Contains(t, out, "No payloads recorded yet.")
}

func TestNetworksListsProfiles(t *testing.T) {
	cfgPath, _ := workspace(t)

	out, err := run(t, cfgPath, "networks")
	require.NoError(t, err)
	assert.Contains(t, out, "Available profiles:")
	assert.Contains(t, out, "- devnet: Throwaway developer network (https://rpc.devnet.example)")
}

func TestNetworksMissingCatalog(t *testing.T) {
	cfgPath, cfg := workspace(t)
	require.NoError(t, os.Remove(cfg.NetworksFile))

	_, err := run(t, cfgPath, "networks")
	require.ErrorIs(t, err, network.ErrConfigLoad)
}

func TestPlanAppendsNote(t *testing.T) {
	cfgPath, cfg := workspace(t)

	out, err := run(t, cfgPath, "plan", "rotate the devnet keys",
		"--urgency", "medium", "--tags", "experiment,plan")
	require.NoError(t, err)
	assert.Contains(t, out, "logged at")

	entries, err := os.ReadDir(cfg.PlansDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(cfg.PlansDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"urgency": "medium"`)
	assert.Contains(t, string(data), `"experiment"`)
	assert.Contains(t, string(data), `"plan"`)
}

func TestPlanRejectsBadUrgency(t *testing.T) {
	cfgPath, cfg := workspace(t)

	_, err := run(t, cfgPath, "plan", "whatever", "--urgency", "urgent")
	require.Error(t, err)
	assert.NoDirExists(t, cfg.PlansDir)
}

func TestDescribe(t *testing.T) {
	cfgPath, _ := workspace(t)

	out, err := run(t, cfgPath, "describe")
	require.NoError(t, err)
	assert.Equal(t, "AuroraLedger on devnet using https://rpc.devnet.example tracking ops mint, swap, stake.\n", out)
}
