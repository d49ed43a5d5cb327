package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaudit/solaudit/internal/adapters/inbound/cli"
)

// fixtureCopy copies a testdata contract into a temp dir so scan side
// effects (history files) stay out of the repo.
func fixtureCopy(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("../../../../testdata/contracts", name))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestScanCommand_JSON(t *testing.T) {
	path := fixtureCopy(t, "vulnerable.sol")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"scan", path, "--json"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), `"overallScore"`)
	assert.Contains(t, buf.String(), `"findings"`)
	assert.Contains(t, buf.String(), "Potential Reentrancy Vulnerability")
}

func TestScanCommand_DefaultTUI(t *testing.T) {
	path := fixtureCopy(t, "vulnerable.sol")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"scan", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "solaudit")
	assert.Contains(t, buf.String(), "Findings")
}

func TestScanCommand_CIFails(t *testing.T) {
	path := fixtureCopy(t, "vulnerable.sol")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"scan", path, "--ci", "--min", "9.9"})
	assert.Error(t, cmd.Execute())
}

func TestScanCommand_CIPasses(t *testing.T) {
	path := fixtureCopy(t, "vulnerable.sol")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"scan", path, "--ci", "--min", "1"})
	assert.NoError(t, cmd.Execute())
}

func TestScanCommand_SafeContractScoresHigher(t *testing.T) {
	vulnerable := fixtureCopy(t, "vulnerable.sol")
	safe := fixtureCopy(t, "safe.sol")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"scan", safe, "--ci", "--min", "9"})
	assert.NoError(t, cmd.Execute())

	cmd = cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"scan", vulnerable, "--ci", "--min", "9"})
	assert.Error(t, cmd.Execute())
}

func TestScanCommand_Directory(t *testing.T) {
	dir := filepath.Dir(fixtureCopy(t, "vulnerable.sol"))

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"scan", dir})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "vulnerable.sol")
	assert.Contains(t, buf.String(), "findings")
}

func TestScanCommand_DirectoryJSON(t *testing.T) {
	dir := filepath.Dir(fixtureCopy(t, "vulnerable.sol"))

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"scan", dir, "--json"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), `"vulnerable.sol"`)
	assert.Contains(t, buf.String(), `"overallScore"`)
}

func TestScanCommand_EmptyDirectory(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"scan", t.TempDir()})
	assert.Error(t, cmd.Execute())
}

func TestScanCommand_MissingPath(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"scan", filepath.Join(t.TempDir(), "nope.sol")})
	assert.Error(t, cmd.Execute())
}

func TestScanCommand_RecordsHistory(t *testing.T) {
	path := fixtureCopy(t, "vulnerable.sol")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"scan", path})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(filepath.Dir(path), ".solaudit", "history", "scans.json"))
}
