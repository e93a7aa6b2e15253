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

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	outer := []string{
		"aoc2022/internal/app", "aoc2022/internal/appshell",
		"aoc2022/internal/cli", "aoc2022/internal/config",
		"aoc2022/internal/cmdutil", "aoc2022/cmd/",
	}
	bans := map[string][]string{
		"aoc2022/internal/days/day": append([]string{"aoc2022/internal/writers", "aoc2022/internal/input"}, outer...),
		"aoc2022/internal/puzzle": append([]string{
			"aoc2022/internal/days", "aoc2022/internal/writers", "aoc2022/internal/input",
		}, outer...),
		"aoc2022/internal/writers": outer,
		"aoc2022/internal/input":   outer,
		"aoc2022/pkg/api":          append([]string{"aoc2022/internal/"}, outer...),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "aoc2022/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "aoc2022/") {
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
