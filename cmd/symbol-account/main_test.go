package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/stretchr/testify/require"

	"symbol.dev/sdk/network"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	for _, k := range []string{envFamily, envNetwork, envNetworksConfig, envLogLevel} {
		t.Setenv(k, "")
	}
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func withClock(t *testing.T, now time.Time) {
	t.Helper()
	prev := newClock
	newClock = func() clock.Clock { return clock.NewTestClock(now) }
	t.Cleanup(func() { newClock = prev })
}

func TestUsage(t *testing.T) {
	code, _, errOut := runCLI(t)
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "Usage:")

	code, out, _ := runCLI(t, "help")
	require.Zero(t, code)
	require.Contains(t, out, "account new")

	code, _, errOut = runCLI(t, "bogus")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "unknown command: bogus")
}

func TestAccountFromKey(t *testing.T) {
	code, out, errOut := runCLI(t, "account", "from-key",
		"--family", "nem",
		"--private-key", "ED4C70D78104EB11BCD73EBDC512FEBC8FBCEB36A370C957FF7E266230BB5D57")
	require.Zero(t, code, errOut)
	require.Contains(t, out, "address: NCFGSLITSWMRROU2GO7FPMIUUDELUPSZUNJABUMH")
	require.Contains(t, out, "public key: D6C3845431236C5A5A907A9E45BD60DA0E12EFD350B970E7F58E3499E2E7A2F0")
	require.Contains(t, out, "private key: ED4C70D78104EB11BCD73EBDC512FEBC8FBCEB36A370C957FF7E266230BB5D57")

	code, out, errOut = runCLI(t, "account", "from-key",
		"--private-key", "E88283CE35FE74C89FFCB2D8BFA0A2CF6108BDC0D07606DEE34D161C30AC2F1E")
	require.Zero(t, code, errOut)
	require.Contains(t, out, "public key: E29C5934F44482E7A9F50725C8681DE6CA63F49E5562DB7E5BC9EABA31356BAD")
}

func TestAccountFromKeyRejectsBadInput(t *testing.T) {
	code, _, errOut := runCLI(t, "account", "from-key")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "missing --private-key")

	code, _, errOut = runCLI(t, "account", "from-key", "--private-key", "ed4c70d78104eb11bcd73ebdc512febc8fbceb36a370c957ff7e266230bb5d57")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "invalid --private-key")

	code, _, errOut = runCLI(t, "account", "from-key", "--family", "bitcoin", "--private-key", "ED4C70D78104EB11BCD73EBDC512FEBC8FBCEB36A370C957FF7E266230BB5D57")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "invalid --family")

	code, _, errOut = runCLI(t, "account", "from-key", "--network", "devnet", "--private-key", "ED4C70D78104EB11BCD73EBDC512FEBC8FBCEB36A370C957FF7E266230BB5D57")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "invalid --network")
}

func TestAccountNew(t *testing.T) {
	code, out, errOut := runCLI(t, "account", "new", "--network", "testnet")
	require.Zero(t, code, errOut)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	address := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[0]), "address:"))
	require.True(t, strings.HasPrefix(address, "T"))
	require.True(t, network.SymbolTestnet.IsValidAddressString(address))
}

func TestAddressCommands(t *testing.T) {
	code, out, errOut := runCLI(t, "address", "from-public-key",
		"--network", "testnet",
		"--public-key", "C5FB65CB902623D93DF2E682FFB13F99D50FAC24D5FF2A42F68C7CA1772FE8A0")
	require.Zero(t, code, errOut)
	require.Equal(t, "TBLYH55IHPS5QCCMNWR3GZWKV6WMCKPTNI7KSDA\n", out)

	code, out, _ = runCLI(t, "address", "validate", "--address", "NBLYH55IHPS5QCCMNWR3GZWKV6WMCKPTNKZIBEY")
	require.Zero(t, code)
	require.Equal(t, "OK\n", out)

	code, _, errOut = runCLI(t, "address", "validate", "--network", "testnet", "--address", "NBLYH55IHPS5QCCMNWR3GZWKV6WMCKPTNKZIBEY")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "invalid:")

	code, _, _ = runCLI(t, "address", "validate", "--family", "nem", "--address", "NBLYH55IHPS5QCCMNWR3GZWKV6WMCKPTNKZIBEY")
	require.Equal(t, 1, code)
}

func TestTimestampCommands(t *testing.T) {
	code, out, errOut := runCLI(t, "timestamp", "to-datetime", "--value", "1500")
	require.Zero(t, code, errOut)
	require.Equal(t, "2021-03-16T00:06:26.5Z\n", out)

	code, out, errOut = runCLI(t, "timestamp", "to-datetime", "--family", "nem", "--value", "3600")
	require.Zero(t, code, errOut)
	require.Equal(t, "2015-03-29T01:06:25Z\n", out)

	code, out, errOut = runCLI(t, "timestamp", "from-datetime", "--family", "nem", "--time", "2015-03-29T01:06:25.9Z")
	require.Zero(t, code, errOut)
	require.Equal(t, "3600\n", out)

	code, _, errOut = runCLI(t, "timestamp", "from-datetime", "--time", "2020-01-01T00:00:00Z")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "precedes network epoch")

	code, _, _ = runCLI(t, "timestamp", "from-datetime", "--time", "yesterday")
	require.Equal(t, 2, code)
}

func TestTimestampNow(t *testing.T) {
	withClock(t, network.SymbolMainnet.Epoch().Add(42*time.Second))

	code, out, errOut := runCLI(t, "timestamp", "now")
	require.Zero(t, code, errOut)
	require.Equal(t, "42000\n", out)
}

func TestEnvironmentDefaults(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "sdk.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SDK_FAMILY=nem\nSDK_NETWORK=mainnet\n"), 0o600))

	code, out, errOut := runCLI(t, "--env-file", envFile, "address", "from-public-key",
		"--public-key", "D6C3845431236C5A5A907A9E45BD60DA0E12EFD350B970E7F58E3499E2E7A2F0")
	require.Zero(t, code, errOut)
	require.Equal(t, "NCFGSLITSWMRROU2GO7FPMIUUDELUPSZUNJABUMH\n", out)

	code, _, errOut = runCLI(t, "--env-file", filepath.Join(t.TempDir(), "missing.env"), "networks", "list")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "read --env-file")
}

func TestNetworksConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "networks.json")
	require.NoError(t, os.WriteFile(cfg, []byte(`{"networks":[{"name":"devnet","family":"symbol","identifier":168,"epoch":"2022-06-01T00:00:00Z"}]}`), 0o600))

	code, out, errOut := runCLI(t, "--networks-config", cfg, "networks", "list")
	require.Zero(t, code, errOut)
	require.Contains(t, out, "symbol:devnet\t0xA8\t2022-06-01T00:00:00Z")
	require.Contains(t, out, "nem:mainnet\t0x68\t2015-03-29T00:06:25Z")

	code, out, errOut = runCLI(t, "--networks-config", cfg, "timestamp", "to-datetime", "--network", "devnet", "--value", "60000")
	require.Zero(t, code, errOut)
	require.Equal(t, "2022-06-01T00:01:00Z\n", out)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"networks":[{"name":"devnet","family":"bitcoin","identifier":1,"epoch":"2022-06-01T00:00:00Z"}]}`), 0o600))
	code, _, errOut = runCLI(t, "--networks-config", bad, "networks", "list")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "networks config")
}

func TestDebugLogging(t *testing.T) {
	code, _, errOut := runCLI(t, "--log-level", "debug", "timestamp", "to-datetime", "--value", "0")
	require.Zero(t, code)
	require.Contains(t, errOut, "network registered")
	require.Contains(t, errOut, "network selected")

	code, _, errOut = runCLI(t, "--log-level", "loud", "networks", "list")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "invalid --log-level")
}
