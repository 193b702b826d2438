// Package manifest loads and validates the list of route files to migrate.
package manifest

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	m "github.com/mrskwiw/routefix/internal/model"
)

// Manifest is the on-disk shape of the target list. It lives under the
// `targets:` key of routefix.yaml so the same file carries tool settings
// and targets.
type Manifest struct {
	Targets []m.Target `yaml:"targets"`
}

// identPattern matches a JavaScript identifier, the only legal shape for a
// dynamic segment name.
var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Load reads the manifest at path and returns its validated target list.
func Load(path m.Path) ([]m.Target, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var mf Manifest
	if err := yaml.Unmarshal(content, &mf); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	if len(mf.Targets) == 0 {
		return nil, fmt.Errorf("manifest %s lists no targets", path)
	}

	if err := Validate(mf.Targets); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return mf.Targets, nil
}

// Save writes a manifest containing the given targets. It refuses to
// overwrite an existing file.
func Save(path m.Path, targets []m.Target) error {
	if _, err := os.Stat(string(path)); err == nil {
		return fmt.Errorf("manifest %s already exists", path)
	}

	content, err := yaml.Marshal(Manifest{Targets: targets})
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := os.WriteFile(string(path), content, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}

	return nil
}

// Validate checks every target for a non-empty path and an
// identifier-shaped parameter name.
func Validate(targets []m.Target) error {
	for i, target := range targets {
		if target.Path == "" {
			return fmt.Errorf("target %d has an empty path", i)
		}

		if !identPattern.MatchString(target.Param) {
			return fmt.Errorf("target %d (%s): param %q is not an identifier", i, target.Path, target.Param)
		}
	}

	return nil
}

// Default returns the historical QuizSquirrel route list the tool was built
// to migrate. It is used when no manifest file is present.
func Default() []m.Target {
	return []m.Target{
		{Path: "src/app/api/quiz/[id]/route.ts", Param: "id"},
		{Path: "src/app/api/users/[username]/route.ts", Param: "username"},
		{Path: "src/app/api/users/[username]/follow/route.ts", Param: "username"},
	}
}
