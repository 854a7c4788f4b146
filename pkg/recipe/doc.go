// Package recipe is the graphle package recipe.
//
// A host calls the recipe's callbacks in a fixed order:
//
//	r := recipe.New()
//	err := r.Build(ctx, recipe.BuildContext{Settings: s, Options: opts, Tools: cmake})
//	art, err := r.Package(ctx, recipe.PackageContext{Options: opts, SourceDir: src, PackageDir: pkg})
//	r.PackageID(info)
//
// graphle is header-only. Build only does work when the build_tests option is
// set, in which case it configures the project with GRAPHLE_TESTS=ON, builds it
// and runs the tests. Package always ships graphle/**.hpp under include/ and
// adds the *.cpp test sources when tests are enabled. PackageID clears the
// info record, so the package id is the same for every configuration.
package recipe
