// Package assets provides the default site skeleton written by "md2site init".
//
// # Skeleton
//
// The skeleton is embedded at compile time:
//
//	scaffold/
//	├── md2site.yaml                 # configuration with every key at its default
//	├── layouts/
//	│   ├── post.layout.html         # per-post page
//	│   └── index.layout.html        # post listing
//	└── posts/
//	    └── hello-world.md           # sample post with front matter
//
// # Security
//
// Layout names are validated to prevent path traversal.
// ValidateAssetName is shared with the on-disk store.
package assets
