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

// matches reports whether dep is ban or a package below it.
func matches(dep, ban string) bool {
	return dep == ban || strings.HasPrefix(dep, strings.TrimSuffix(ban, "/")+"/")
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	// The core (parse, classify, protocol, aggregate) stays free of I/O
	// orchestration, CLI and logging.
	orchestration := []string{
		"misclass/internal/pipeline", "misclass/internal/stage",
		"misclass/internal/app", "misclass/internal/appcore", "misclass/internal/appshell",
		"misclass/internal/cli", "misclass/internal/cliutil", "misclass/internal/config",
		"misclass/internal/output", "misclass/internal/writers",
		"misclass/cmd",
	}
	core := append([]string{"misclass/internal/logging", "go.uber.org/zap"}, orchestration...)
	presentation := []string{
		"misclass/internal/pipeline", "misclass/internal/stage",
		"misclass/internal/app", "misclass/internal/appcore",
		"misclass/internal/cli", "misclass/internal/cliutil", "misclass/internal/config",
		"misclass/cmd",
	}
	bans := map[string][]string{
		"misclass/internal/report":    core,
		"misclass/internal/classify":  core,
		"misclass/internal/protocol":  core,
		"misclass/internal/aggregate": core,
		"misclass/internal/common":    core,
		"misclass/internal/output":    presentation,
		"misclass/internal/writers":   presentation,
		"misclass/pkg/api":            append([]string{"misclass/internal"}, presentation...),
		"misclass/internal/stage": {
			"misclass/internal/pipeline", "misclass/internal/app", "misclass/internal/appcore",
			"misclass/internal/cli", "misclass/internal/config", "misclass/cmd",
		},
		"misclass/internal/pipeline": {
			"misclass/internal/app", "misclass/internal/appcore",
			"misclass/internal/cli", "misclass/internal/cliutil", "misclass/internal/config",
			"misclass/internal/output", "misclass/internal/writers", "misclass/cmd",
		},
	}

	var violations []string
	seen := 0
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if p.Standard || !strings.HasPrefix(p.ImportPath, "misclass/") {
			continue
		}
		seen++
		forbidden, ok := bans[p.ImportPath]
		if !ok {
			continue
		}
		for _, dep := range p.Imports {
			for _, ban := range forbidden {
				if matches(dep, ban) {
					violations = append(violations, p.ImportPath+" → "+dep)
				}
			}
		}
	}

	if seen == 0 {
		t.Fatalf("go list returned no misclass packages")
	}
	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

func TestMatches(t *testing.T) {
	if !matches("misclass/internal/app", "misclass/internal/app") {
		t.Fatal("exact match")
	}
	if matches("misclass/internal/appcore", "misclass/internal/app") {
		t.Fatal("sibling with shared prefix must not match")
	}
	if !matches("misclass/cmd/misclass", "misclass/cmd") {
		t.Fatal("subpackage must match")
	}
}
