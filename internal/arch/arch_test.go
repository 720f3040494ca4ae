// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

const mod = "github.com/acorg/christian-beast/"

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		mod + "pkg/api": {
			mod + "internal/", mod + "cmd/",
		},
		mod + "internal/output": {
			mod + "internal/app", mod + "internal/matrixapp",
			mod + "internal/cli", mod + "internal/matrixcli",
			mod + "cmd/",
		},
		mod + "internal/cli": {
			mod + "internal/app", mod + "internal/matrixapp",
			mod + "internal/output", mod + "cmd/",
		},
		mod + "internal/matrixcli": {
			mod + "internal/app", mod + "internal/matrixapp",
			mod + "internal/output", mod + "cmd/",
		},
		mod + "internal/clibase": {
			mod + "internal/app", mod + "internal/matrixapp",
			mod + "internal/cli", mod + "internal/matrixcli",
			mod + "internal/output", mod + "cmd/",
		},
		mod + "internal/app": {
			mod + "internal/matrixapp", mod + "internal/matrixcli", mod + "cmd/",
		},
		mod + "internal/matrixapp": {
			mod + "internal/app", mod + "internal/cli", mod + "cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, mod) {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, mod) {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
