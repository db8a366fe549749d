package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeADB = `#!/bin/sh
if [ "$1" = "-s" ]; then
	shift 2
fi
case "$1" in
start-server) ;;
devices)
	echo "List of devices attached"
	echo "R3CN70ABCDE            device usb:1-1 product:panther model:Pixel_7 device:panther transport_id:1"
	;;
connect) echo "connected to $2" ;;
*) echo "unexpected: $*" >&2; exit 1 ;;
esac
`

func TestSmokeFlow(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake adb is a shell script")
	}

	home := t.TempDir()
	binaryPath := buildBinary(t)
	adbPath := filepath.Join(home, "adb")
	require.NoError(t, os.WriteFile(adbPath, []byte(fakeADB), 0o755))

	env := []string{
		"HOME=" + home,
		"XDG_CONFIG_HOME=" + filepath.Join(home, ".config"),
		"DROIDMIRROR_BRIDGE_PATH=" + adbPath,
		"DROIDMIRROR_DATA_DIR=" + filepath.Join(home, "data"),
	}

	stdout, stderr, err := runDroidmirror(t, binaryPath, env, "devices", "--save")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "R3CN70ABCDE")
	assert.Contains(t, stdout, "Pixel_7")

	stdout, stderr, err = runDroidmirror(t, binaryPath, env, "connect", "192.168.1.42", "--save")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Connected to 192.168.1.42:5555")

	stdout, stderr, err = runDroidmirror(t, binaryPath, env, "saved", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "saved: 2")
	assert.Contains(t, stdout, "192.168.1.42:5555")

	_, err = os.Stat(filepath.Join(home, "data", "devices.toml"))
	require.NoError(t, err)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "droidmirror-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/droidmirror")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build droidmirror binary: %s", string(output))
	return binaryPath
}

func runDroidmirror(t *testing.T, binaryPath string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
