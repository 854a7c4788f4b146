// Package artifact copies files selected by fnmatch patterns between
// directory trees and records what was delivered.
//
// Patterns match against slash-separated paths relative to the copy source.
// '*' also crosses directory boundaries, so "*.hpp" selects headers at any
// depth while the relative layout below the source is kept:
//
//	var c artifact.Copier
//	files, err := c.Copy(ctx, "*.hpp", "export/graphle", "package/include")
//
// A missing source directory or a pattern with no matches copies nothing and
// is not an error. Files already present at the destination are overwritten.
//
// Export applies the exported source patterns of a recipe to a project
// directory and returns the resulting Artifact.
package artifact
