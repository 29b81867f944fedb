package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const petsSpec = `
openapi: "3.1.0"
info:
  title: Pets
  version: "1.2"
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                type: array
                items:
                  type: string
`

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := RootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeSpec(t *testing.T) (dir, spec string) {
	t.Helper()
	dir = t.TempDir()
	spec = filepath.Join(dir, "pets.yaml")
	require.NoError(t, os.WriteFile(spec, []byte(petsSpec), 0644))
	return dir, spec
}

func TestFrontendWritesFiles(t *testing.T) {
	dir, spec := writeSpec(t)
	outDir := filepath.Join(dir, "client")

	_, stderr, err := run(t, "generate", "--no-color", "--spec", spec, "--name", "pets", "frontend", "--output-dir", outDir)
	require.NoError(t, err)

	require.Contains(t, stderr, "Loaded OpenAPI 3.1.0: Pets v1.2")
	require.Contains(t, stderr, "Written: "+filepath.Join(outDir, "pets.ts"))

	types, err := os.ReadFile(filepath.Join(outDir, "pets-types.d.ts"))
	require.NoError(t, err)
	require.Contains(t, string(types), "listPets(req: ListPetsRequest): Promise<ListPetsResponses>;")

	impl, err := os.ReadFile(filepath.Join(outDir, "pets.ts"))
	require.NoError(t, err)
	require.Contains(t, string(impl), "export const listPets: Pets['listPets']")
}

func TestFrontendDryRun(t *testing.T) {
	dir, spec := writeSpec(t)
	outDir := filepath.Join(dir, "client")

	stdout, _, err := run(t, "generate", "--no-color", "--spec", spec, "--dry-run", "frontend", "--output-dir", outDir, "--language", "js")
	require.NoError(t, err)

	require.Contains(t, stdout, "// api.js\n")
	require.NotContains(t, stdout, "api-types.d.ts")
	require.NoDirExists(t, outDir)
}

func TestFrontendVerboseLogs(t *testing.T) {
	dir, spec := writeSpec(t)

	_, stderr, err := run(t, "generate", "--no-color", "--verbose", "--spec", spec, "--dry-run", "frontend", "--output-dir", dir)
	require.NoError(t, err)
	require.Contains(t, stderr, "level=DEBUG")
	require.Contains(t, stderr, "operation=listPets")
}

func TestFrontendErrors(t *testing.T) {
	dir, _ := writeSpec(t)

	_, _, err := run(t, "generate", "--spec", filepath.Join(dir, "missing.yaml"), "frontend", "--output-dir", dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading spec")

	_, _, err = run(t, "generate", "--spec", filepath.Join(dir, "pets.yaml"), "frontend")
	require.Error(t, err)
	require.Contains(t, err.Error(), "output directory is required")
}
