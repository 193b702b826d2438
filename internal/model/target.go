// Package model defines the data structures for route-handler migration.
package model

// Path represents a file system path.
type Path string

// Target identifies one route-handler file to migrate together with the
// dynamic segment name its handlers receive (e.g. "id", "username").
type Target struct {
	Path  Path   `yaml:"path"`
	Param string `yaml:"param"`
}
