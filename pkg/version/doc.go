// Package version provides strict semantic version parsing and ordering
// (semver.org 2.0.0) for package metadata.
//
// # Usage
//
//	v, err := version.ParseVersion("1.0.0")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.0.0
//
// Ordering follows semver precedence: pre-releases sort before the release
// they precede, and build metadata is ignored:
//
//	version.MustParseVersion("1.0.0-rc.1").Compare(version.MustParseVersion("1.0.0")) // -1
//	version.MustParseVersion("1.0.0+a").Compare(version.MustParseVersion("1.0.0+b"))  // 0
package version
