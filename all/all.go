// Package all imports all supported catalog loaders.
//
// Import this package for its side effects to register every endpoint scheme:
//
//	import (
//		"github.com/git-pkgs/catalog"
//		_ "github.com/git-pkgs/catalog/all"
//	)
//
//	// Now all schemes are available
//	schemes := catalog.SupportedSchemes()
//	// ["file", "http", "https"]
package all

import (
	_ "github.com/git-pkgs/catalog/internal/fileindex"
	_ "github.com/git-pkgs/catalog/internal/httpindex"
)
